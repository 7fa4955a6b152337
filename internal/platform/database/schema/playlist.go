// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// PlaylistTable represents the 'playlists' table
type PlaylistTable struct {
	Table     string
	ID        string
	Title     string
	AuthorID  string
	CreatedAt string
	UpdatedAt string
}

// Playlist is the schema definition for playlists
var Playlist = PlaylistTable{
	Table:     "playlists",
	ID:        "id",
	Title:     "title",
	AuthorID:  `"authorId"`,
	CreatedAt: `"createdAt"`,
	UpdatedAt: `"updatedAt"`,
}

// Columns returns all standard column names
func (t PlaylistTable) Columns() []string {
	return []string{t.ID, t.Title, t.AuthorID, t.CreatedAt, t.UpdatedAt}
}
