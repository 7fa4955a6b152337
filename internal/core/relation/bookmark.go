// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package relation

import (
	"context"

	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/database/schema"
	"github.com/taibuivan/kirinukist/pkg/slice"
)

// Bookmarks expands an author's bookmarks into full targets.
type Bookmarks struct {
	base      Base
	videos    *Videos
	playlists *Playlists
}

func NewBookmarks(base Base, videos *Videos, playlists *Playlists) *Bookmarks {
	return &Bookmarks{base: base, videos: videos, playlists: playlists}
}

// Videos returns the videos authorID bookmarked, oldest bookmark first, expanded like
// [Videos.Expand].
func (expander *Bookmarks) Videos(context context.Context, authorID string) ([]*VideoWithTagsAndAuthor, error) {
	if _, err := expander.base.Authors.Get(context, authorID); err != nil {
		return nil, apperr.Step("load_author", err)
	}

	ids, err := expander.base.VideoBookmarks.TargetIDs(context, authorID)
	if err != nil {
		return nil, apperr.Step("load_video_bookmarks", err)
	}

	videos, err := expander.videos.ExpandIDs(context, ids, schema.VideoBookmark.Table)
	if err != nil {
		return nil, apperr.Step("expand_video_bookmarks", err)
	}
	return videos, nil
}

// Playlists returns the playlists authorID bookmarked, oldest bookmark first, expanded
// like [Playlists.Expand].
func (expander *Bookmarks) Playlists(context context.Context, authorID string) ([]*PlaylistWithVideos, error) {
	if _, err := expander.base.Authors.Get(context, authorID); err != nil {
		return nil, apperr.Step("load_author", err)
	}

	ids, err := expander.base.PlaylistBookmarks.TargetIDs(context, authorID)
	if err != nil {
		return nil, apperr.Step("load_playlist_bookmarks", err)
	}

	playlists, err := expander.base.Playlists.GetMany(context, ids)
	if err != nil {
		return nil, apperr.Step("load_playlists", err)
	}
	if len(playlists) != len(ids) {
		found := slice.KeyBy(playlists, func(p *playlist.Playlist) string { return p.ID })
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				return nil, dangling(expander.base.Logger, "load_playlists", schema.PlaylistBookmark.Table, "Playlist", id)
			}
		}
	}

	expanded, err := expander.playlists.ExpandMany(context, playlists)
	if err != nil {
		return nil, apperr.Step("expand_playlist_bookmarks", err)
	}
	return expanded, nil
}
