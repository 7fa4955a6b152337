// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package relation

import (
	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/core/video"
)

// VideoWithTagsAndAuthor is a video with its owning author and every tag it carries.
type VideoWithTagsAndAuthor struct {
	*video.Video
	Author *author.Author `json:"author"`
	Tags   []*tag.Tag     `json:"tags"`
}

// PlaylistVideo is an expanded video at its position in a playlist.
type PlaylistVideo struct {
	VideoWithTagsAndAuthor
	Order int `json:"order"`
}

// PlaylistWithVideos is a playlist with its videos in ascending order.
type PlaylistWithVideos struct {
	*playlist.Playlist
	Videos []*PlaylistVideo `json:"videos"`
}

type AuthorWithVideos struct {
	*author.Author
	Videos []*VideoWithTagsAndAuthor `json:"videos"`
}

type AuthorWithPlaylists struct {
	*author.Author
	Playlists []*PlaylistWithVideos `json:"playlists"`
}

type AuthorWithVideosAndPlaylists struct {
	*author.Author
	Videos    []*VideoWithTagsAndAuthor `json:"videos"`
	Playlists []*PlaylistWithVideos     `json:"playlists"`
}

// TagWithVideos is a tag with the videos carrying it. Each video lists all of its
// tags, not only this one.
type TagWithVideos struct {
	*tag.Tag
	Videos []*VideoWithTagsAndAuthor `json:"videos"`
}
