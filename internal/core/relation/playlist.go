// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package relation

import (
	"context"

	"github.com/taibuivan/kirinukist/internal/core/capability"
	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/database/schema"
	"github.com/taibuivan/kirinukist/pkg/slice"
)

var _ capability.RelationExpander[PlaylistWithVideos] = (*Playlists)(nil)

// Playlists expands playlists with their ordered, expanded videos.
type Playlists struct {
	base   Base
	videos *Videos
}

func NewPlaylists(base Base, videos *Videos) *Playlists {
	return &Playlists{base: base, videos: videos}
}

// Expand returns playlist id with its videos in ascending order, each carrying its
// position.
func (expander *Playlists) Expand(context context.Context, id string) (*PlaylistWithVideos, error) {
	p, err := expander.base.Playlists.Get(context, id)
	if err != nil {
		return nil, apperr.Step("load_playlist", err)
	}

	expanded, err := expander.ExpandMany(context, []*playlist.Playlist{p})
	if err != nil {
		return nil, apperr.Step("expand_playlist", err)
	}
	return expanded[0], nil
}

// ExpandMany expands playlists in order, reading the entries of all of them at once
// and expanding every distinct video once.
func (expander *Playlists) ExpandMany(context context.Context, playlists []*playlist.Playlist) ([]*PlaylistWithVideos, error) {
	if len(playlists) == 0 {
		return []*PlaylistWithVideos{}, nil
	}

	playlistIDs := slice.Map(playlists, func(p *playlist.Playlist) string { return p.ID })
	entries, err := expander.base.Playlists.ListEntriesByPlaylist(context, playlistIDs)
	if err != nil {
		return nil, apperr.Step("load_entries", err)
	}

	var videoIDs []string
	for _, id := range playlistIDs {
		for _, entry := range entries[id] {
			videoIDs = append(videoIDs, entry.VideoID)
		}
	}
	videoIDs = slice.Unique(videoIDs)

	videos, err := expander.videos.ExpandIDs(context, videoIDs, schema.PlaylistVideo.Table)
	if err != nil {
		return nil, apperr.Step("expand_playlist_videos", err)
	}
	byID := slice.KeyBy(videos, func(v *VideoWithTagsAndAuthor) string { return v.ID })

	expanded := make([]*PlaylistWithVideos, 0, len(playlists))
	for _, p := range playlists {
		items := make([]*PlaylistVideo, 0, len(entries[p.ID]))
		for _, entry := range entries[p.ID] {
			items = append(items, &PlaylistVideo{VideoWithTagsAndAuthor: *byID[entry.VideoID], Order: entry.Order})
		}
		expanded = append(expanded, &PlaylistWithVideos{Playlist: p, Videos: items})
	}
	return expanded, nil
}
