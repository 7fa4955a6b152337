// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"context"
	"time"
)

type Repository interface {
	ListPlaylists(context context.Context) ([]*Playlist, error)
	ListPlaylistsByAuthor(context context.Context, authorID string) ([]*Playlist, error)
	GetPlaylist(context context.Context, id string) (*Playlist, error)
	GetPlaylists(context context.Context, ids []string) ([]*Playlist, error)
	CountPlaylistsByAuthor(context context.Context, authorID string) (int, error)

	CreatePlaylist(context context.Context, p *Playlist) error
	UpdatePlaylist(context context.Context, id string, patch Patch, updatedAt time.Time) error
	DeletePlaylist(context context.Context, id string) error

	/*
		Entries are returned ordered by playlist then "order" ascending.
	*/
	ListEntries(context context.Context, playlistIDs []string) ([]*Entry, error)
	InsertEntry(context context.Context, entry *Entry) error
	UpdateEntryOrder(context context.Context, playlistID, videoID string, order int) error
	DeleteEntry(context context.Context, playlistID, videoID string) error
}
