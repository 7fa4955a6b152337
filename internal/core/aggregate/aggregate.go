// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package aggregate derives counts from other entities' rows and combines them with
relation views.

Counts are never stored. They are computed on read, or taken from data already in
hand: [Service.AuthorWithVideosPlaylistsAndCounts] counts the videos and playlists it
was given instead of querying them again.
*/
package aggregate

import (
	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/core/relation"
)

// Counts are the derived numbers shown next to an author.
type Counts struct {
	FollowerCount int `json:"followerCount"`
	VideoCount    int `json:"videoCount"`
	PlaylistCount int `json:"playlistCount"`
}

type AuthorWithCounts struct {
	*author.Author
	Counts
}

type AuthorWithVideosPlaylistsAndCounts struct {
	*relation.AuthorWithVideosAndPlaylists
	Counts
}

// UserSummary is the compact author shape used by follower listings.
type UserSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	IconURL string  `json:"iconUrl"`
	Counts  *Counts `json:"counts,omitempty"`
}
