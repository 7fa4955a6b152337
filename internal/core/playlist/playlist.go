// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import "time"

// Playlist is an authored, ordered collection of videos.
type Playlist struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Entry places a video at a position of a playlist. Order is unique within a
// playlist and need not be contiguous.
type Entry struct {
	PlaylistID string `json:"playlistId"`
	VideoID    string `json:"videoId"`
	Order      int    `json:"order"`
}

type CreateInput struct {
	Title    string `json:"title"`
	AuthorID string `json:"authorId"`
}

type Patch struct {
	Title *string `json:"title"`
}

// Apply merges the provided fields into p.
func (patch Patch) Apply(p *Playlist) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
}

const (
	FieldTitle    = "title"
	FieldAuthorID = "authorId"
	FieldOrder    = "order"
)
