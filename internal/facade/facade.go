// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package facade exposes one contract per entity, merging base, relation, aggregate and
bookmark operations.

A facade's read methods take a [View] and dispatch to the cheapest chain of services
that yields exactly that shape. Mutations check referential existence before writing,
and enforce ownership for the caller identity they are given; the identity itself is
established elsewhere.

The http_*.go files adapt the facades to chi routes.
*/
package facade

import (
	"context"

	"github.com/taibuivan/kirinukist/internal/core/aggregate"
	"github.com/taibuivan/kirinukist/internal/core/follow"
	"github.com/taibuivan/kirinukist/internal/core/relation"
	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

// Facades is the full set of entity facades over one set of base services.
type Facades struct {
	Authors   *Authors
	Videos    *Videos
	Tags      *Tags
	Playlists *Playlists
}

// New wires the relation and aggregate services over base and returns the facades.
func New(base relation.Base, follows *follow.Service, search *tag.Search) *Facades {
	videos := relation.NewVideos(base)
	playlists := relation.NewPlaylists(base, videos)

	counts := aggregate.NewService(base.Authors, follows, base.Videos, base.Playlists, base.Logger)

	return &Facades{
		Authors: &Authors{
			base:      base,
			follows:   follows,
			relations: relation.NewAuthors(base, videos, playlists),
			bookmarks: relation.NewBookmarks(base, videos, playlists),
			aggregate: counts,
			logger:    base.Logger,
		},
		Videos: &Videos{
			base:     base,
			expander: videos,
			search:   search,
		},
		Tags: &Tags{
			base:     base,
			expander: relation.NewTags(base, videos),
		},
		Playlists: &Playlists{
			base:     base,
			expander: playlists,
		},
	}
}

// mustExist fails with the lookup's error (NotFound for a missing id).
func mustExist[T any](context context.Context, get func(context.Context, string) (T, error), id string) error {
	_, err := get(context, id)
	return err
}

// mustOwn fails with Forbidden unless callerID is ownerID.
func mustOwn(callerID, ownerID, resource string) error {
	if callerID != ownerID {
		return apperr.Forbidden("You do not own this " + resource)
	}
	return nil
}
