// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package relation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/core/capability"
	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/core/video"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/pkg/slice"
)

var _ capability.RelationExpander[VideoWithTagsAndAuthor] = (*Videos)(nil)

// Videos expands videos with their author and tags.
type Videos struct {
	base Base
}

func NewVideos(base Base) *Videos {
	return &Videos{base: base}
}

// Expand returns the video id with its author and tags, fetched concurrently.
func (expander *Videos) Expand(context context.Context, id string) (*VideoWithTagsAndAuthor, error) {
	v, err := expander.base.Videos.Get(context, id)
	if err != nil {
		return nil, apperr.Step("load_video", err)
	}

	expanded, err := expander.ExpandMany(context, []*video.Video{v})
	if err != nil {
		return nil, apperr.Step("expand_video", err)
	}
	return expanded[0], nil
}

// ExpandMany expands videos in order. Authors and tags are each loaded with one
// batch read, concurrently.
func (expander *Videos) ExpandMany(context context.Context, videos []*video.Video) ([]*VideoWithTagsAndAuthor, error) {
	if len(videos) == 0 {
		return []*VideoWithTagsAndAuthor{}, nil
	}

	authorIDs := slice.Unique(slice.Map(videos, func(v *video.Video) string { return v.AuthorID }))
	videoIDs := slice.Map(videos, func(v *video.Video) string { return v.ID })

	var (
		authors map[string]*author.Author
		tags    map[string][]*tag.Tag
	)

	group, groupContext := errgroup.WithContext(context)
	group.Go(func() error {
		var err error
		authors, err = expander.base.Authors.GetMany(groupContext, authorIDs)
		return apperr.Step("load_authors", err)
	})
	group.Go(func() error {
		var err error
		tags, err = expander.base.Tags.ListByVideos(groupContext, videoIDs)
		return apperr.Step("load_tags", err)
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	expanded := make([]*VideoWithTagsAndAuthor, 0, len(videos))
	for _, v := range videos {
		owner, ok := authors[v.AuthorID]
		if !ok {
			return nil, dangling(expander.base.Logger, "load_authors", "video "+v.ID, "Author", v.AuthorID)
		}
		expanded = append(expanded, &VideoWithTagsAndAuthor{Video: v, Author: owner, Tags: tags[v.ID]})
	}
	return expanded, nil
}

// ExpandIDs loads and expands videos by id, in the order of ids. The ids come from
// the junction table from; every one of them must exist.
func (expander *Videos) ExpandIDs(context context.Context, ids []string, from string) ([]*VideoWithTagsAndAuthor, error) {
	videos, err := expander.base.Videos.GetMany(context, ids)
	if err != nil {
		return nil, apperr.Step("load_videos", err)
	}
	if len(videos) != len(ids) {
		found := slice.KeyBy(videos, func(v *video.Video) string { return v.ID })
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				return nil, dangling(expander.base.Logger, "load_videos", from, "Video", id)
			}
		}
	}

	expanded, err := expander.ExpandMany(context, videos)
	if err != nil {
		return nil, apperr.Step("expand_videos", err)
	}
	return expanded, nil
}
