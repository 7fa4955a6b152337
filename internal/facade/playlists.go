// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"context"

	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/core/relation"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

// Playlists is the playlist facade.
type Playlists struct {
	base     relation.Base
	expander *relation.Playlists
}

// Get returns playlist id as Basic (*playlist.Playlist) or WithVideos
// (*relation.PlaylistWithVideos).
func (facade *Playlists) Get(context context.Context, id string, view View) (any, error) {
	switch view {
	case ViewBasic:
		return facade.base.Playlists.Get(context, id)
	case ViewWithVideos:
		return facade.expander.Expand(context, id)
	default:
		return nil, unsupported("playlists", view)
	}
}

// List returns every playlist as Basic or WithVideos.
func (facade *Playlists) List(context context.Context, view View) (any, error) {
	switch view {
	case ViewBasic:
		return facade.base.Playlists.List(context)
	case ViewWithVideos:
		playlists, err := facade.base.Playlists.List(context)
		if err != nil {
			return nil, err
		}
		expanded, err := facade.expander.ExpandMany(context, playlists)
		if err != nil {
			return nil, apperr.Step("expand_playlists", err)
		}
		return expanded, nil
	default:
		return nil, unsupported("playlist lists", view)
	}
}

// # Writes

// Create stores a playlist owned by callerID.
func (facade *Playlists) Create(context context.Context, callerID string, input playlist.CreateInput) (string, error) {
	input.AuthorID = callerID
	if err := mustExist(context, facade.base.Authors.Get, callerID); err != nil {
		return "", err
	}
	return facade.base.Playlists.Create(context, input)
}

func (facade *Playlists) Update(context context.Context, callerID, id string, patch playlist.Patch) error {
	if err := facade.owned(context, callerID, id); err != nil {
		return err
	}
	return facade.base.Playlists.Update(context, id, patch)
}

func (facade *Playlists) Delete(context context.Context, callerID, id string) error {
	if err := facade.owned(context, callerID, id); err != nil {
		return err
	}
	return facade.base.Playlists.Delete(context, id)
}

// AddVideo appends (nil order) or inserts a video into a playlist the caller owns.
// The video must exist.
func (facade *Playlists) AddVideo(context context.Context, callerID, playlistID, videoID string, order *int) error {
	if err := facade.owned(context, callerID, playlistID); err != nil {
		return err
	}
	if err := mustExist(context, facade.base.Videos.Get, videoID); err != nil {
		return err
	}
	return facade.base.Playlists.AddVideo(context, playlistID, videoID, order)
}

func (facade *Playlists) MoveVideo(context context.Context, callerID, playlistID, videoID string, order int) error {
	if err := facade.owned(context, callerID, playlistID); err != nil {
		return err
	}
	return facade.base.Playlists.MoveVideo(context, playlistID, videoID, order)
}

func (facade *Playlists) RemoveVideo(context context.Context, callerID, playlistID, videoID string) error {
	if err := facade.owned(context, callerID, playlistID); err != nil {
		return err
	}
	return facade.base.Playlists.RemoveVideo(context, playlistID, videoID)
}

// owned loads playlist id and checks callerID owns it.
func (facade *Playlists) owned(context context.Context, callerID, id string) error {
	p, err := facade.base.Playlists.Get(context, id)
	if err != nil {
		return err
	}
	return mustOwn(callerID, p.AuthorID, "playlist")
}
