// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kirinukist/internal/core/aggregate"
	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/core/bookmark"
	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/core/relation"
	"github.com/taibuivan/kirinukist/internal/core/video"
	"github.com/taibuivan/kirinukist/internal/facade"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/testutil"
	"github.com/taibuivan/kirinukist/pkg/pointer"
)

func newFacades(store *testutil.Store) (*testutil.Services, *facade.Facades) {
	services := store.Services()
	return services, facade.New(services.Base(), services.Follows, services.Search)
}

func isForbidden(err error) bool {
	return apperr.HasCode(err, apperr.CodeForbidden)
}

// # Authors

func TestAuthors_GetDispatchesOnView(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()

	a1 := services.Author(t, "Alice")
	services.Video(t, a1, "clip", 0, 10)

	tests := []struct {
		view  facade.View
		check func(t *testing.T, got any)
	}{
		{facade.ViewBasic, func(t *testing.T, got any) {
			assert.IsType(t, &author.Author{}, got)
		}},
		{facade.ViewWithVideos, func(t *testing.T, got any) {
			require.IsType(t, &relation.AuthorWithVideos{}, got)
			assert.Len(t, got.(*relation.AuthorWithVideos).Videos, 1)
		}},
		{facade.ViewWithPlaylists, func(t *testing.T, got any) {
			assert.IsType(t, &relation.AuthorWithPlaylists{}, got)
		}},
		{facade.ViewWithVideosAndPlaylists, func(t *testing.T, got any) {
			assert.IsType(t, &relation.AuthorWithVideosAndPlaylists{}, got)
		}},
		{facade.ViewWithCounts, func(t *testing.T, got any) {
			require.IsType(t, &aggregate.AuthorWithCounts{}, got)
			assert.Equal(t, 1, got.(*aggregate.AuthorWithCounts).VideoCount)
		}},
		{facade.ViewWithVideosPlaylistsAndCounts, func(t *testing.T, got any) {
			require.IsType(t, &aggregate.AuthorWithVideosPlaylistsAndCounts{}, got)
			assert.Equal(t, 1, got.(*aggregate.AuthorWithVideosPlaylistsAndCounts).VideoCount)
		}},
		{facade.ViewWithBookmarks, func(t *testing.T, got any) {
			require.IsType(t, &facade.AuthorWithBookmarks{}, got)
			assert.Empty(t, got.(*facade.AuthorWithBookmarks).VideoBookmarks)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			got, err := facades.Authors.Get(ctx, a1, tt.view)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}

	_, err := facades.Authors.Get(ctx, a1, facade.ViewWithTagsAndAuthor)
	assert.True(t, apperr.IsValidation(err))
}

func TestAuthors_ListViews(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()
	services.Author(t, "Alice")

	got, err := facades.Authors.List(ctx, facade.ViewWithCounts)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = facades.Authors.List(ctx, facade.ViewWithVideos)
	assert.True(t, apperr.IsValidation(err))
}

func TestAuthors_UpdateOwnProfileOnly(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()

	a1 := services.Author(t, "Alice")
	a2 := services.Author(t, "Bob")
	patch := author.Patch{Name: pointer.To("Mallory")}

	err := facades.Authors.Update(ctx, a2, a1, patch)
	assert.True(t, isForbidden(err))
	assert.Zero(t, store.Calls("author.UpdateAuthor"))

	require.NoError(t, facades.Authors.Update(ctx, a1, a1, patch))
	got, err := services.Authors.Get(ctx, a1)
	require.NoError(t, err)
	assert.Equal(t, "Mallory", got.Name)
}

func TestAuthors_DeleteRestrictedWhileOwningContent(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()

	withVideo := services.Author(t, "Alice")
	services.Video(t, withVideo, "clip", 0, 10)
	withPlaylist := services.Author(t, "Bob")
	services.Playlist(t, withPlaylist, "mix")

	for _, id := range []string{withVideo, withPlaylist} {
		err := facades.Authors.Delete(ctx, id, id)
		assert.True(t, apperr.IsConflict(err))
	}
	assert.Zero(t, store.Calls("author.DeleteAuthor"))
}

func TestAuthors_DeleteEmptyAuthor(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()

	a1 := services.Author(t, "Alice")
	a2 := services.Author(t, "Bob")

	assert.True(t, isForbidden(facades.Authors.Delete(ctx, a2, a1)))
	require.NoError(t, facades.Authors.Delete(ctx, a1, a1))

	_, err := services.Authors.Get(ctx, a1)
	assert.True(t, apperr.IsNotFound(err))
	assert.True(t, apperr.IsNotFound(facades.Authors.Delete(ctx, a1, a1)))
}

func TestAuthors_Follow(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()

	a1 := services.Author(t, "Alice")
	a2 := services.Author(t, "Bob")

	assert.True(t, apperr.IsValidation(facades.Authors.Follow(ctx, a1, a1)))
	assert.True(t, apperr.IsNotFound(facades.Authors.Follow(ctx, a1, "missing")))
	assert.True(t, apperr.IsNotFound(facades.Authors.Follow(ctx, "missing", a1)))

	require.NoError(t, facades.Authors.Follow(ctx, a2, a1))
	assert.True(t, apperr.IsConflict(facades.Authors.Follow(ctx, a2, a1)))

	following, err := facades.Authors.IsFollowing(ctx, a2, a1)
	require.NoError(t, err)
	assert.True(t, following)

	followers, err := facades.Authors.Followers(ctx, a1, true)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, a2, followers[0].ID)
	require.NotNil(t, followers[0].Counts)

	require.NoError(t, facades.Authors.Unfollow(ctx, a2, a1))
	following, err = facades.Authors.IsFollowing(ctx, a2, a1)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestAuthors_Bookmarks(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()

	owner := services.Author(t, "Alice")
	fan := services.Author(t, "Bob")
	v1 := services.Video(t, owner, "clip", 0, 10)
	p1 := services.Playlist(t, owner, "mix")
	services.Enqueue(t, p1, v1, 1)

	assert.True(t, apperr.IsNotFound(facades.Authors.BookmarkVideo(ctx, fan, "missing")))
	assert.True(t, apperr.IsNotFound(facades.Authors.BookmarkPlaylist(ctx, "missing", p1)))
	assert.Zero(t, store.BookmarkRows(bookmark.KindVideo, fan, "missing"))

	require.NoError(t, facades.Authors.BookmarkVideo(ctx, fan, v1))
	require.NoError(t, facades.Authors.BookmarkPlaylist(ctx, fan, p1))

	saved, err := facades.Authors.HasBookmarkedVideo(ctx, fan, v1)
	require.NoError(t, err)
	assert.True(t, saved)

	videos, err := facades.Authors.BookmarkedVideos(ctx, fan)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "Alice", videos[0].Author.Name)

	got, err := facades.Authors.Get(ctx, fan, facade.ViewWithBookmarks)
	require.NoError(t, err)
	withBookmarks := got.(*facade.AuthorWithBookmarks)
	assert.Len(t, withBookmarks.VideoBookmarks, 1)
	require.Len(t, withBookmarks.PlaylistBookmarks, 1)
	assert.Len(t, withBookmarks.PlaylistBookmarks[0].Videos, 1)

	require.NoError(t, facades.Authors.UnbookmarkPlaylist(ctx, fan, p1))
	saved, err = facades.Authors.HasBookmarkedPlaylist(ctx, fan, p1)
	require.NoError(t, err)
	assert.False(t, saved)
}

// # Videos

func TestVideos_OwnershipAndTags(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()

	owner := services.Author(t, "Alice")
	other := services.Author(t, "Bob")
	tagID := services.Tag(t, "karaoke")

	id, err := facades.Videos.Create(ctx, owner, video.CreateInput{
		Title:    "Opening",
		URL:      "https://www.youtube.com/watch?v=opening",
		Start:    5,
		End:      65,
		AuthorID: other,
	})
	require.NoError(t, err)

	created, err := services.Videos.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, owner, created.AuthorID)

	assert.True(t, isForbidden(facades.Videos.Update(ctx, other, id, video.Patch{Title: pointer.To("Stolen")})))
	assert.True(t, isForbidden(facades.Videos.Delete(ctx, other, id)))
	assert.True(t, isForbidden(facades.Videos.AttachTag(ctx, other, id, tagID)))
	assert.Zero(t, store.Calls("video.UpdateVideo"))
	assert.Zero(t, store.Calls("tag.InsertVideoTag"))

	assert.True(t, apperr.IsNotFound(facades.Videos.AttachTag(ctx, owner, id, "missing")))
	require.NoError(t, facades.Videos.AttachTag(ctx, owner, id, tagID))

	got, err := facades.Videos.Get(ctx, id, facade.ViewWithTagsAndAuthor)
	require.NoError(t, err)
	expanded := got.(*relation.VideoWithTagsAndAuthor)
	require.Len(t, expanded.Tags, 1)
	assert.Equal(t, "karaoke", expanded.Tags[0].Name)
	assert.Equal(t, "Alice", expanded.Author.Name)

	require.NoError(t, facades.Videos.DetachTag(ctx, owner, id, tagID))
	require.NoError(t, facades.Videos.Delete(ctx, owner, id))
	_, err = facades.Videos.Get(ctx, id, facade.ViewBasic)
	assert.True(t, apperr.IsNotFound(err))
}

func TestVideos_CreateRequiresAuthorProfile(t *testing.T) {
	store := testutil.NewStore()
	_, facades := newFacades(store)

	_, err := facades.Videos.Create(context.Background(), "stranger", video.CreateInput{
		Title: "Opening",
		URL:   "https://www.youtube.com/watch?v=opening",
		End:   10,
	})

	assert.True(t, apperr.IsNotFound(err))
	assert.Zero(t, store.Calls("video.CreateVideo"))
}

func TestVideos_UnsupportedViews(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()
	v1 := services.Video(t, services.Author(t, "Alice"), "clip", 0, 10)

	_, err := facades.Videos.Get(ctx, v1, facade.ViewWithCounts)
	assert.True(t, apperr.IsValidation(err))

	_, err = facades.Videos.List(ctx, facade.ViewWithPlaylists)
	assert.True(t, apperr.IsValidation(err))

	got, err := facades.Videos.List(ctx, facade.ViewWithTagsAndAuthor)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestVideos_Search(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()

	a1 := services.Author(t, "Alice")
	t1 := services.Tag(t, "karaoke")
	t2 := services.Tag(t, "collab")
	both := services.Video(t, a1, "both", 0, 10)
	onlyFirst := services.Video(t, a1, "first", 0, 10)
	services.Video(t, a1, "untagged", 0, 10)
	services.Attach(t, both, t1)
	services.Attach(t, both, t2)
	services.Attach(t, onlyFirst, t1)

	all, err := facades.Videos.Search(ctx, []string{t1, t2}, facade.MatchAll, false)
	require.NoError(t, err)
	assert.Equal(t, []string{both}, all)

	anyTag, err := facades.Videos.Search(ctx, []string{t1, t2}, facade.MatchAny, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{both, onlyFirst}, anyTag)

	expanded, err := facades.Videos.Search(ctx, []string{t2}, facade.MatchAll, true)
	require.NoError(t, err)
	videos := expanded.([]*relation.VideoWithTagsAndAuthor)
	require.Len(t, videos, 1)
	assert.Equal(t, both, videos[0].ID)
	assert.Len(t, videos[0].Tags, 2)

	_, err = facades.Videos.Search(ctx, []string{t1}, facade.Match("some"), false)
	assert.True(t, apperr.IsValidation(err))
}

// # Playlists

func TestPlaylists_OwnershipAndEntries(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()

	owner := services.Author(t, "Alice")
	other := services.Author(t, "Bob")
	v1 := services.Video(t, other, "clip", 0, 10)

	p1, err := facades.Playlists.Create(ctx, owner, playlist.CreateInput{Title: "mix"})
	require.NoError(t, err)

	assert.True(t, isForbidden(facades.Playlists.AddVideo(ctx, other, p1, v1, nil)))
	assert.True(t, apperr.IsNotFound(facades.Playlists.AddVideo(ctx, owner, p1, "missing", nil)))
	assert.Zero(t, store.Calls("playlist.InsertEntry"))

	require.NoError(t, facades.Playlists.AddVideo(ctx, owner, p1, v1, nil))
	assert.True(t, isForbidden(facades.Playlists.MoveVideo(ctx, other, p1, v1, 5)))
	require.NoError(t, facades.Playlists.MoveVideo(ctx, owner, p1, v1, 5))

	got, err := facades.Playlists.Get(ctx, p1, facade.ViewWithVideos)
	require.NoError(t, err)
	expanded := got.(*relation.PlaylistWithVideos)
	require.Len(t, expanded.Videos, 1)
	assert.Equal(t, 5, expanded.Videos[0].Order)

	assert.True(t, isForbidden(facades.Playlists.RemoveVideo(ctx, other, p1, v1)))
	require.NoError(t, facades.Playlists.RemoveVideo(ctx, owner, p1, v1))

	rename := playlist.Patch{Title: pointer.To("renamed")}
	assert.True(t, isForbidden(facades.Playlists.Update(ctx, other, p1, rename)))
	require.NoError(t, facades.Playlists.Update(ctx, owner, p1, rename))
	require.NoError(t, facades.Playlists.Delete(ctx, owner, p1))

	_, err = facades.Playlists.Get(ctx, p1, facade.ViewBasic)
	assert.True(t, apperr.IsNotFound(err))
	_, err = facades.Playlists.Get(ctx, p1, facade.ViewWithCounts)
	assert.True(t, apperr.IsValidation(err))
}

// # Tags

func TestTags_Views(t *testing.T) {
	store := testutil.NewStore()
	services, facades := newFacades(store)
	ctx := context.Background()

	tagID := services.Tag(t, "karaoke")
	v1 := services.Video(t, services.Author(t, "Alice"), "clip", 0, 10)
	services.Attach(t, v1, tagID)

	got, err := facades.Tags.Get(ctx, tagID, facade.ViewWithVideos)
	require.NoError(t, err)
	assert.Len(t, got.(*relation.TagWithVideos).Videos, 1)

	all, err := facades.Tags.List(ctx, facade.ViewWithVideos)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = facades.Tags.List(ctx, facade.ViewWithCounts)
	assert.True(t, apperr.IsValidation(err))
}
