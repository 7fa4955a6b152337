// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kirinukist/internal/testutil"
)

func TestSearch_UnionAndIntersection(t *testing.T) {
	store := testutil.NewStore()
	services := store.Services()
	ctx := context.Background()
	authorID := services.Author(t, "Alice")

	a := services.Video(t, authorID, "A", 0, 10)
	b := services.Video(t, authorID, "B", 0, 10)
	c := services.Video(t, authorID, "C", 0, 10)
	t1 := services.Tag(t, "t1")
	t2 := services.Tag(t, "t2")
	services.Attach(t, a, t1)
	services.Attach(t, b, t1)
	services.Attach(t, b, t2)
	services.Attach(t, c, t2)

	anyTag, err := services.Search.VideosByAnyTag(ctx, []string{t1, t2})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b, c}, anyTag)

	allTags, err := services.Search.VideosByAllTags(ctx, []string{t1, t2})
	require.NoError(t, err)
	assert.Equal(t, []string{b}, allTags)
}

func TestSearch_EmptyQuery(t *testing.T) {
	store := testutil.NewStore()
	services := store.Services()
	ctx := context.Background()

	anyTag, err := services.Search.VideosByAnyTag(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, anyTag)
	assert.Empty(t, anyTag)

	allTags, err := services.Search.VideosByAllTags(ctx, []string{})
	require.NoError(t, err)
	assert.NotNil(t, allTags)
	assert.Empty(t, allTags)

	assert.Zero(t, store.Calls("tag.ListVideoTagsByTags"))
}

func TestSearch_Disjoint(t *testing.T) {
	store := testutil.NewStore()
	services := store.Services()
	authorID := services.Author(t, "Alice")

	a := services.Video(t, authorID, "A", 0, 10)
	c := services.Video(t, authorID, "C", 0, 10)
	t1 := services.Tag(t, "t1")
	t2 := services.Tag(t, "t2")
	t3 := services.Tag(t, "t3")
	services.Attach(t, a, t1)
	services.Attach(t, c, t2)

	allTags, err := services.Search.VideosByAllTags(context.Background(), []string{t1, t2, t3})
	require.NoError(t, err)
	assert.Equal(t, []string{}, allTags)
	// intersection stops reading once it is empty
	assert.Equal(t, 2, store.Calls("tag.ListVideoTagsByTags"))
}
