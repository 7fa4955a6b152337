// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/taibuivan/kirinukist/internal/core/bookmark"
	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

type playlistRepository struct{ *Store }

// Playlists returns the store's [playlist.Repository].
func (s *Store) Playlists() playlist.Repository {
	return playlistRepository{s}
}

func clonePlaylist(p *playlist.Playlist) *playlist.Playlist {
	c := *p
	return &c
}

func (r playlistRepository) ListPlaylists(_ context.Context) ([]*playlist.Playlist, error) {
	return r.filter("playlist.ListPlaylists", func(*playlist.Playlist) bool { return true })
}

func (r playlistRepository) ListPlaylistsByAuthor(_ context.Context, authorID string) ([]*playlist.Playlist, error) {
	return r.filter("playlist.ListPlaylistsByAuthor", func(p *playlist.Playlist) bool { return p.AuthorID == authorID })
}

func (r playlistRepository) GetPlaylists(_ context.Context, ids []string) ([]*playlist.Playlist, error) {
	return r.filter("playlist.GetPlaylists", func(p *playlist.Playlist) bool { return slices.Contains(ids, p.ID) })
}

func (r playlistRepository) GetPlaylist(_ context.Context, id string) (*playlist.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("playlist.GetPlaylist"); err != nil {
		return nil, err
	}

	if i := r.playlistIndex(id); i >= 0 {
		return clonePlaylist(r.playlists[i]), nil
	}
	return nil, apperr.NotFound("Playlist")
}

func (r playlistRepository) CountPlaylistsByAuthor(_ context.Context, authorID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("playlist.CountPlaylistsByAuthor"); err != nil {
		return 0, err
	}

	count := 0
	for _, p := range r.playlists {
		if p.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (r playlistRepository) CreatePlaylist(_ context.Context, p *playlist.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("playlist.CreatePlaylist"); err != nil {
		return err
	}

	if r.playlistIndex(p.ID) >= 0 {
		return apperr.Conflict("Playlist already exists")
	}
	r.playlists = append(r.playlists, clonePlaylist(p))
	return nil
}

func (r playlistRepository) UpdatePlaylist(_ context.Context, id string, patch playlist.Patch, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("playlist.UpdatePlaylist"); err != nil {
		return err
	}

	i := r.playlistIndex(id)
	if i < 0 {
		return apperr.NotFound("Playlist")
	}
	patch.Apply(r.playlists[i])
	r.playlists[i].UpdatedAt = updatedAt
	return nil
}

func (r playlistRepository) DeletePlaylist(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("playlist.DeletePlaylist"); err != nil {
		return err
	}

	i := r.playlistIndex(id)
	if i < 0 {
		return apperr.NotFound("Playlist")
	}
	r.playlists = slices.Delete(r.playlists, i, i+1)

	r.entries = slices.DeleteFunc(r.entries, func(e *playlist.Entry) bool { return e.PlaylistID == id })
	r.bookmarks[bookmark.KindPlaylist] = deleteBookmarksBy(r.bookmarks[bookmark.KindPlaylist], "", id)
	return nil
}

// # Entries

func (r playlistRepository) ListEntries(_ context.Context, playlistIDs []string) ([]*playlist.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("playlist.ListEntries"); err != nil {
		return nil, err
	}

	result := []*playlist.Entry{}
	for _, e := range r.entries {
		if slices.Contains(playlistIDs, e.PlaylistID) {
			c := *e
			result = append(result, &c)
		}
	}
	slices.SortStableFunc(result, func(a, b *playlist.Entry) int {
		return cmp.Or(cmp.Compare(a.PlaylistID, b.PlaylistID), cmp.Compare(a.Order, b.Order))
	})
	return result, nil
}

func (r playlistRepository) InsertEntry(_ context.Context, entry *playlist.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("playlist.InsertEntry"); err != nil {
		return err
	}

	for _, e := range r.entries {
		if e.PlaylistID == entry.PlaylistID && (e.VideoID == entry.VideoID || e.Order == entry.Order) {
			return apperr.Conflict("Playlist entry already exists")
		}
	}
	c := *entry
	r.entries = append(r.entries, &c)
	return nil
}

func (r playlistRepository) UpdateEntryOrder(_ context.Context, playlistID, videoID string, order int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("playlist.UpdateEntryOrder"); err != nil {
		return err
	}

	var target *playlist.Entry
	for _, e := range r.entries {
		if e.PlaylistID != playlistID {
			continue
		}
		if e.VideoID == videoID {
			target = e
		} else if e.Order == order {
			return apperr.Conflict("Playlist entry already exists")
		}
	}
	if target == nil {
		return apperr.NotFound("Playlist entry")
	}
	target.Order = order
	return nil
}

func (r playlistRepository) DeleteEntry(_ context.Context, playlistID, videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("playlist.DeleteEntry"); err != nil {
		return err
	}

	before := len(r.entries)
	r.entries = slices.DeleteFunc(r.entries, func(e *playlist.Entry) bool {
		return e.PlaylistID == playlistID && e.VideoID == videoID
	})
	if len(r.entries) == before {
		return apperr.NotFound("Playlist entry")
	}
	return nil
}

func (r playlistRepository) filter(method string, keep func(*playlist.Playlist) bool) ([]*playlist.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(method); err != nil {
		return nil, err
	}

	result := []*playlist.Playlist{}
	for _, p := range r.playlists {
		if keep(p) {
			result = append(result, clonePlaylist(p))
		}
	}
	return result, nil
}

func (s *Store) playlistIndex(id string) int {
	return slices.IndexFunc(s.playlists, func(p *playlist.Playlist) bool { return p.ID == id })
}
