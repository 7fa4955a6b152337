// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/testutil"
)

func TestService_CreateStoresCleanName(t *testing.T) {
	store := testutil.NewStore()
	services := store.Services()

	id := services.Tag(t, "  ＶＴｕｂｅｒ   切り抜き ")

	got, err := services.Tags.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "VTuber 切り抜き", got.Name)
}

func TestService_NameCollisions(t *testing.T) {
	store := testutil.NewStore()
	services := store.Services()
	ctx := context.Background()

	services.Tag(t, "Music")

	tests := []struct {
		name  string
		input string
	}{
		{"same", "Music"},
		{"case", "music"},
		{"width", "ＭＵＳＩＣ"},
		{"spacing", "  music "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.Tags.Create(ctx, tag.CreateInput{Name: tt.input})
			assert.True(t, apperr.IsConflict(err))
		})
	}

	assert.Equal(t, 1, store.Calls("tag.CreateTag"))
}

func TestService_UpdateName(t *testing.T) {
	store := testutil.NewStore()
	services := store.Services()
	ctx := context.Background()

	music := services.Tag(t, "music")
	services.Tag(t, "game")

	t.Run("own_name_in_other_case", func(t *testing.T) {
		name := "Music"
		require.NoError(t, services.Tags.Update(ctx, music, tag.Patch{Name: &name}))
	})

	t.Run("taken_by_other", func(t *testing.T) {
		name := "GAME"
		err := services.Tags.Update(ctx, music, tag.Patch{Name: &name})
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("too_long", func(t *testing.T) {
		name := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"
		err := services.Tags.Update(ctx, music, tag.Patch{Name: &name})
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("missing", func(t *testing.T) {
		name := "anything"
		before := store.Calls("tag.UpdateTag")
		err := services.Tags.Update(ctx, "missing", tag.Patch{Name: &name})
		assert.True(t, apperr.IsNotFound(err))
		assert.Equal(t, before, store.Calls("tag.UpdateTag"))
	})
}

func TestService_AttachDetach(t *testing.T) {
	store := testutil.NewStore()
	services := store.Services()
	ctx := context.Background()

	videoID := services.Video(t, services.Author(t, "Alice"), "clip", 0, 10)
	tagID := services.Tag(t, "music")

	require.NoError(t, services.Tags.Attach(ctx, videoID, tagID))
	assert.True(t, apperr.IsConflict(services.Tags.Attach(ctx, videoID, tagID)))
	assert.Equal(t, 1, store.Calls("tag.InsertVideoTag"))

	tags, err := services.Tags.ListByVideo(ctx, videoID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "music", tags[0].Name)

	require.NoError(t, services.Tags.Detach(ctx, videoID, tagID))
	assert.True(t, apperr.IsNotFound(services.Tags.Detach(ctx, videoID, tagID)))

	tags, err = services.Tags.ListByVideo(ctx, videoID)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestService_ListByVideosBatches(t *testing.T) {
	store := testutil.NewStore()
	services := store.Services()
	authorID := services.Author(t, "Alice")

	v1 := services.Video(t, authorID, "one", 0, 10)
	v2 := services.Video(t, authorID, "two", 0, 10)
	v3 := services.Video(t, authorID, "three", 0, 10)
	music := services.Tag(t, "music")
	game := services.Tag(t, "game")
	services.Attach(t, v1, music)
	services.Attach(t, v1, game)
	services.Attach(t, v2, game)

	store.ResetCalls()
	byVideo, err := services.Tags.ListByVideos(context.Background(), []string{v1, v2, v3})
	require.NoError(t, err)

	assert.Len(t, byVideo[v1], 2)
	assert.Len(t, byVideo[v2], 1)
	assert.NotNil(t, byVideo[v3])
	assert.Empty(t, byVideo[v3])
	assert.Equal(t, 1, store.Calls("tag.ListVideoTagsByVideos"))
	assert.Equal(t, 1, store.Calls("tag.GetTags"))
}

func TestService_ListByVideosDanglingTag(t *testing.T) {
	store := testutil.NewStore()
	services := store.Services()
	ctx := context.Background()

	videoID := services.Video(t, services.Author(t, "Alice"), "clip", 0, 10)

	// The in-memory store does not enforce foreign keys, so a link can outlive its tag row.
	require.NoError(t, store.Tags().InsertVideoTag(ctx, videoID, "ghost"))

	_, err := services.Tags.ListByVideos(ctx, []string{videoID})
	require.True(t, apperr.IsDatabase(err))
	assert.False(t, apperr.IsNotFound(err))
	assert.Contains(t, apperr.As(err).Cause.Error(), "resolve_video_tags")
}
