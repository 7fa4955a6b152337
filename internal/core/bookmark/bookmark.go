// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bookmark records an author's saved videos and playlists.

Video and playlist bookmarks live in separate tables with the same layout, so one
implementation serves both; a [Kind] selects the table. Expanding bookmarks into full
targets is done by the relation package.
*/
package bookmark

import "time"

// Kind names what a bookmark points at.
type Kind string

const (
	KindVideo    Kind = "video"
	KindPlaylist Kind = "playlist"
)

// Bookmark is a saved (author, target) pair.
type Bookmark struct {
	AuthorID  string    `json:"authorId"`
	TargetID  string    `json:"targetId"`
	CreatedAt time.Time `json:"createdAt"`
}
