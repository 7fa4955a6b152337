// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// VideoTagTable represents the 'video_tags' junction table
type VideoTagTable struct {
	Table   string
	VideoID string
	TagID   string
}

// VideoTag is the schema definition for video_tags
var VideoTag = VideoTagTable{
	Table:   "video_tags",
	VideoID: `"videoId"`,
	TagID:   `"tagId"`,
}
