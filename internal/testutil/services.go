// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/core/bookmark"
	"github.com/taibuivan/kirinukist/internal/core/follow"
	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/core/relation"
	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/core/video"
)

// Services bundles the base services wired to one [Store].
type Services struct {
	Authors           *author.Service
	Videos            *video.Service
	Playlists         *playlist.Service
	Tags              *tag.Service
	Search            *tag.Search
	Follows           *follow.Service
	VideoBookmarks    *bookmark.Service
	PlaylistBookmarks *bookmark.Service
}

// Services builds the base services over s with a discarding logger.
func (s *Store) Services() *Services {
	logger := Logger()
	return &Services{
		Authors:           author.NewService(s.Authors(), logger),
		Videos:            video.NewService(s.Videos(), logger),
		Playlists:         playlist.NewService(s.Playlists(), logger),
		Tags:              tag.NewService(s.Tags(), logger),
		Search:            tag.NewSearch(s.Tags()),
		Follows:           follow.NewService(s.Follows(), logger),
		VideoBookmarks:    bookmark.NewService(s.Bookmarks(bookmark.KindVideo), logger, bookmark.KindVideo),
		PlaylistBookmarks: bookmark.NewService(s.Bookmarks(bookmark.KindPlaylist), logger, bookmark.KindPlaylist),
	}
}

// Base returns the services as the [relation.Base] expanders and facades are built on.
func (services *Services) Base() relation.Base {
	return relation.Base{
		Authors:           services.Authors,
		Videos:            services.Videos,
		Playlists:         services.Playlists,
		Tags:              services.Tags,
		VideoBookmarks:    services.VideoBookmarks,
		PlaylistBookmarks: services.PlaylistBookmarks,
		Logger:            Logger(),
	}
}

// # Fixtures

// Author creates an author and returns its id.
func (services *Services) Author(t testing.TB, name string) string {
	t.Helper()
	id, err := services.Authors.Create(context.Background(), author.CreateInput{
		Name:    name,
		IconURL: "https://cdn.kirinukist.app/icons/" + name + ".png",
	})
	require.NoError(t, err)
	return id
}

// Video creates a clip owned by authorID and returns its id.
func (services *Services) Video(t testing.TB, authorID, title string, start, end int) string {
	t.Helper()
	id, err := services.Videos.Create(context.Background(), video.CreateInput{
		Title:    title,
		URL:      "https://www.youtube.com/watch?v=" + title,
		Start:    start,
		End:      end,
		AuthorID: authorID,
	})
	require.NoError(t, err)
	return id
}

// Playlist creates a playlist owned by authorID and returns its id.
func (services *Services) Playlist(t testing.TB, authorID, title string) string {
	t.Helper()
	id, err := services.Playlists.Create(context.Background(), playlist.CreateInput{Title: title, AuthorID: authorID})
	require.NoError(t, err)
	return id
}

// Tag creates a tag and returns its id.
func (services *Services) Tag(t testing.TB, name string) string {
	t.Helper()
	id, err := services.Tags.Create(context.Background(), tag.CreateInput{Name: name})
	require.NoError(t, err)
	return id
}

// Attach links tagID to videoID.
func (services *Services) Attach(t testing.TB, videoID, tagID string) {
	t.Helper()
	require.NoError(t, services.Tags.Attach(context.Background(), videoID, tagID))
}

// Enqueue adds videoID to playlistID at order.
func (services *Services) Enqueue(t testing.TB, playlistID, videoID string, order int) {
	t.Helper()
	require.NoError(t, services.Playlists.AddVideo(context.Background(), playlistID, videoID, &order))
}
