// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package relation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/core/relation"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/testutil"
)

type expanders struct {
	store     *testutil.Store
	services  *testutil.Services
	videos    *relation.Videos
	playlists *relation.Playlists
	tags      *relation.Tags
	authors   *relation.Authors
	bookmarks *relation.Bookmarks
}

func newExpanders() *expanders {
	store := testutil.NewStore()
	services := store.Services()
	base := services.Base()

	videos := relation.NewVideos(base)
	playlists := relation.NewPlaylists(base, videos)
	return &expanders{
		store:     store,
		services:  services,
		videos:    videos,
		playlists: playlists,
		tags:      relation.NewTags(base, videos),
		authors:   relation.NewAuthors(base, videos, playlists),
		bookmarks: relation.NewBookmarks(base, videos, playlists),
	}
}

// causeOf returns the step chain of a database error.
func causeOf(t *testing.T, err error) string {
	t.Helper()
	require.True(t, apperr.IsDatabase(err), "expected a database error, got %v", err)
	return apperr.As(err).Cause.Error()
}

func TestTags_ExpandScenario(t *testing.T) {
	e := newExpanders()
	a1 := e.services.Author(t, "Alice")
	v1 := e.services.Video(t, a1, "v1", 10, 70)
	t1 := e.services.Tag(t, "music")
	e.services.Attach(t, v1, t1)

	got, err := e.tags.Expand(context.Background(), t1)
	require.NoError(t, err)

	assert.Equal(t, "music", got.Name)
	require.Len(t, got.Videos, 1)
	assert.Equal(t, v1, got.Videos[0].ID)
	assert.Equal(t, "Alice", got.Videos[0].Author.Name)
	require.Len(t, got.Videos[0].Tags, 1)
	assert.Equal(t, t1, got.Videos[0].Tags[0].ID)
	assert.Equal(t, "music", got.Videos[0].Tags[0].Name)
}

func TestTags_ExpandCrossEnrichesTags(t *testing.T) {
	e := newExpanders()
	a1 := e.services.Author(t, "Alice")
	v1 := e.services.Video(t, a1, "v1", 0, 10)
	music := e.services.Tag(t, "music")
	live := e.services.Tag(t, "live")
	e.services.Attach(t, v1, music)
	e.services.Attach(t, v1, live)

	got, err := e.tags.Expand(context.Background(), music)
	require.NoError(t, err)

	require.Len(t, got.Videos, 1)
	assert.Len(t, got.Videos[0].Tags, 2, "a video carries every tag, not only the expanded one")
}

func TestTags_ExpandAllBatches(t *testing.T) {
	e := newExpanders()
	a1 := e.services.Author(t, "Alice")
	music := e.services.Tag(t, "music")
	game := e.services.Tag(t, "game")
	empty := e.services.Tag(t, "empty")
	for i := 0; i < 3; i++ {
		v := e.services.Video(t, a1, "clip", 0, 10)
		e.services.Attach(t, v, music)
		e.services.Attach(t, v, game)
	}

	e.store.ResetCalls()
	all, err := e.tags.ExpandAll(context.Background())
	require.NoError(t, err)

	require.Len(t, all, 3)
	assert.Len(t, all[0].Videos, 3)
	assert.Len(t, all[1].Videos, 3)
	assert.Equal(t, empty, all[2].ID)
	assert.Empty(t, all[2].Videos)

	assert.Equal(t, 1, e.store.Calls("tag.ListVideoTagsByTags"))
	assert.Equal(t, 1, e.store.Calls("video.GetVideos"))
	assert.Equal(t, 1, e.store.Calls("author.GetAuthors"))
	assert.Equal(t, 1, e.store.Calls("tag.ListVideoTagsByVideos"))
}

func TestPlaylists_OrderPreserved(t *testing.T) {
	e := newExpanders()
	a1 := e.services.Author(t, "Alice")
	p1 := e.services.Playlist(t, a1, "mix")

	third := e.services.Video(t, a1, "third", 0, 10)
	first := e.services.Video(t, a1, "first", 0, 10)
	second := e.services.Video(t, a1, "second", 0, 10)
	e.services.Enqueue(t, p1, third, 3)
	e.services.Enqueue(t, p1, first, 1)
	e.services.Enqueue(t, p1, second, 2)

	got, err := e.playlists.Expand(context.Background(), p1)
	require.NoError(t, err)

	require.Len(t, got.Videos, 3)
	for i, want := range []string{first, second, third} {
		assert.Equal(t, want, got.Videos[i].ID)
		assert.Equal(t, i+1, got.Videos[i].Order)
	}
}

func TestPlaylists_ExpandManyBatches(t *testing.T) {
	e := newExpanders()
	alice := e.services.Author(t, "Alice")
	bob := e.services.Author(t, "Bob")

	shared := e.services.Video(t, alice, "shared", 0, 10)
	own := e.services.Video(t, bob, "own", 0, 10)
	p1 := e.services.Playlist(t, alice, "one")
	p2 := e.services.Playlist(t, bob, "two")
	e.services.Enqueue(t, p1, shared, 1)
	e.services.Enqueue(t, p2, shared, 1)
	e.services.Enqueue(t, p2, own, 2)

	playlists, err := e.services.Playlists.List(context.Background())
	require.NoError(t, err)

	e.store.ResetCalls()
	got, err := e.playlists.ExpandMany(context.Background(), playlists)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Len(t, got[0].Videos, 1)
	assert.Len(t, got[1].Videos, 2)
	assert.Equal(t, "Bob", got[1].Videos[1].Author.Name)

	assert.Equal(t, 1, e.store.Calls("playlist.ListEntries"))
	assert.Equal(t, 1, e.store.Calls("video.GetVideos"))
	assert.Equal(t, 1, e.store.Calls("author.GetAuthors"))
}

func TestExpand_MissingRootIsNotFound(t *testing.T) {
	e := newExpanders()
	ctx := context.Background()

	_, err := e.videos.Expand(ctx, "missing")
	assert.True(t, apperr.IsNotFound(err), "video")

	_, err = e.playlists.Expand(ctx, "missing")
	assert.True(t, apperr.IsNotFound(err), "playlist")

	_, err = e.tags.Expand(ctx, "missing")
	assert.True(t, apperr.IsNotFound(err), "tag")

	_, err = e.authors.WithVideosAndPlaylists(ctx, "missing")
	assert.True(t, apperr.IsNotFound(err), "author")

	_, err = e.bookmarks.Videos(ctx, "missing")
	assert.True(t, apperr.IsNotFound(err), "bookmarks")
}

func TestVideos_DanglingAuthorIsDatabaseError(t *testing.T) {
	e := newExpanders()
	v1 := e.services.Video(t, "gone", "orphan", 0, 10)

	_, err := e.videos.Expand(context.Background(), v1)

	assert.False(t, apperr.IsNotFound(err))
	assert.Contains(t, causeOf(t, err), "expand_video: load_authors")
}

func TestPlaylists_DanglingEntryIsDatabaseError(t *testing.T) {
	e := newExpanders()
	ctx := context.Background()
	p1 := e.services.Playlist(t, e.services.Author(t, "Alice"), "mix")
	require.NoError(t, e.store.Playlists().InsertEntry(ctx, &playlist.Entry{PlaylistID: p1, VideoID: "gone", Order: 1}))

	_, err := e.playlists.Expand(ctx, p1)

	assert.Contains(t, causeOf(t, err), "expand_playlist: expand_playlist_videos: load_videos")
}

func TestBookmarks_DanglingPlaylistIsDatabaseError(t *testing.T) {
	e := newExpanders()
	ctx := context.Background()
	a1 := e.services.Author(t, "Alice")
	require.NoError(t, e.services.PlaylistBookmarks.Bookmark(ctx, a1, "gone"))

	_, err := e.bookmarks.Playlists(ctx, a1)

	assert.Contains(t, causeOf(t, err), "load_playlists")
}

func TestAuthors_StepChain(t *testing.T) {
	e := newExpanders()
	a1 := e.services.Author(t, "Alice")
	e.services.Video(t, a1, "clip", 0, 10)
	boom := errors.New("connection reset")
	e.store.FailOn("tag.ListVideoTagsByVideos", boom)

	_, err := e.authors.WithVideos(context.Background(), a1)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "expand_author_videos: expand_videos: load_tags: connection reset", causeOf(t, err))
}

func TestAuthors_WithVideosAndPlaylists(t *testing.T) {
	e := newExpanders()
	a1 := e.services.Author(t, "Alice")
	a2 := e.services.Author(t, "Bob")
	v1 := e.services.Video(t, a1, "mine", 0, 10)
	e.services.Video(t, a2, "theirs", 0, 10)
	p1 := e.services.Playlist(t, a1, "mix")
	e.services.Enqueue(t, p1, v1, 1)

	got, err := e.authors.WithVideosAndPlaylists(context.Background(), a1)
	require.NoError(t, err)

	assert.Equal(t, "Alice", got.Name)
	require.Len(t, got.Videos, 1)
	assert.Equal(t, v1, got.Videos[0].ID)
	require.Len(t, got.Playlists, 1)
	require.Len(t, got.Playlists[0].Videos, 1)
	assert.Equal(t, v1, got.Playlists[0].Videos[0].ID)
}

func TestAuthors_WithVideosAndPlaylistsFailsWhole(t *testing.T) {
	e := newExpanders()
	a1 := e.services.Author(t, "Alice")
	e.store.FailOn("playlist.ListPlaylistsByAuthor", errors.New("timeout"))

	got, err := e.authors.WithVideosAndPlaylists(context.Background(), a1)

	assert.Nil(t, got)
	assert.Equal(t, "expand_author_playlists: list_playlists: timeout", causeOf(t, err))
}

func TestBookmarks_Videos(t *testing.T) {
	e := newExpanders()
	ctx := context.Background()
	a1 := e.services.Author(t, "Alice")
	first := e.services.Video(t, a1, "first", 0, 10)
	second := e.services.Video(t, a1, "second", 0, 10)
	require.NoError(t, e.services.VideoBookmarks.Bookmark(ctx, a1, second))
	require.NoError(t, e.services.VideoBookmarks.Bookmark(ctx, a1, first))

	got, err := e.bookmarks.Videos(ctx, a1)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, second, got[0].ID)
	assert.Equal(t, first, got[1].ID)
	assert.Equal(t, "Alice", got[0].Author.Name)
}
