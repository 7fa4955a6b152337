// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BookmarkTable describes a bookmark junction. Video and playlist bookmarks share
// the layout but live in separate tables.
type BookmarkTable struct {
	Table     string
	AuthorID  string
	TargetID  string
	CreatedAt string
}

// VideoBookmark is the schema definition for video_bookmarks
var VideoBookmark = BookmarkTable{
	Table:     "video_bookmarks",
	AuthorID:  `"authorId"`,
	TargetID:  `"videoId"`,
	CreatedAt: `"createdAt"`,
}

// PlaylistBookmark is the schema definition for playlist_bookmarks
var PlaylistBookmark = BookmarkTable{
	Table:     "playlist_bookmarks",
	AuthorID:  `"authorId"`,
	TargetID:  `"playlistId"`,
	CreatedAt: `"createdAt"`,
}
