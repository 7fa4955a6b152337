// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package relation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

// Authors expands an author with the content they own.
type Authors struct {
	base      Base
	videos    *Videos
	playlists *Playlists
}

func NewAuthors(base Base, videos *Videos, playlists *Playlists) *Authors {
	return &Authors{base: base, videos: videos, playlists: playlists}
}

// WithVideos returns the author with every video they own, expanded.
func (expander *Authors) WithVideos(context context.Context, id string) (*AuthorWithVideos, error) {
	owner, err := expander.base.Authors.Get(context, id)
	if err != nil {
		return nil, apperr.Step("load_author", err)
	}

	videos, err := expander.authorVideos(context, id)
	if err != nil {
		return nil, err
	}
	return &AuthorWithVideos{Author: owner, Videos: videos}, nil
}

// WithPlaylists returns the author with every playlist they own, expanded.
func (expander *Authors) WithPlaylists(context context.Context, id string) (*AuthorWithPlaylists, error) {
	owner, err := expander.base.Authors.Get(context, id)
	if err != nil {
		return nil, apperr.Step("load_author", err)
	}

	playlists, err := expander.authorPlaylists(context, id)
	if err != nil {
		return nil, err
	}
	return &AuthorWithPlaylists{Author: owner, Playlists: playlists}, nil
}

// WithVideosAndPlaylists runs the video and playlist pipelines concurrently. The first
// failure cancels the other and no partial result is returned.
func (expander *Authors) WithVideosAndPlaylists(context context.Context, id string) (*AuthorWithVideosAndPlaylists, error) {
	owner, err := expander.base.Authors.Get(context, id)
	if err != nil {
		return nil, apperr.Step("load_author", err)
	}

	result := &AuthorWithVideosAndPlaylists{Author: owner}

	group, groupContext := errgroup.WithContext(context)
	group.Go(func() error {
		var err error
		result.Videos, err = expander.authorVideos(groupContext, id)
		return err
	})
	group.Go(func() error {
		var err error
		result.Playlists, err = expander.authorPlaylists(groupContext, id)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (expander *Authors) authorVideos(context context.Context, authorID string) ([]*VideoWithTagsAndAuthor, error) {
	videos, err := expander.base.Videos.ListByAuthor(context, authorID)
	if err != nil {
		return nil, apperr.Database("expand_author_videos", apperr.Step("list_videos", err))
	}

	expanded, err := expander.videos.ExpandMany(context, videos)
	if err != nil {
		return nil, apperr.Database("expand_author_videos", apperr.Step("expand_videos", err))
	}
	return expanded, nil
}

func (expander *Authors) authorPlaylists(context context.Context, authorID string) ([]*PlaylistWithVideos, error) {
	playlists, err := expander.base.Playlists.ListByAuthor(context, authorID)
	if err != nil {
		return nil, apperr.Database("expand_author_playlists", apperr.Step("list_playlists", err))
	}

	expanded, err := expander.playlists.ExpandMany(context, playlists)
	if err != nil {
		return nil, apperr.Database("expand_author_playlists", apperr.Step("expand_playlists", err))
	}
	return expanded, nil
}
