// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// PlaylistVideoTable represents the 'playlist_videos' junction table
type PlaylistVideoTable struct {
	Table      string
	PlaylistID string
	VideoID    string
	Order      string
}

// PlaylistVideo is the schema definition for playlist_videos
var PlaylistVideo = PlaylistVideoTable{
	Table:      "playlist_videos",
	PlaylistID: `"playlistId"`,
	VideoID:    `"videoId"`,
	Order:      `"order"`,
}
