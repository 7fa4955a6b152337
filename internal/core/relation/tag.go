// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package relation

import (
	"context"

	"github.com/taibuivan/kirinukist/internal/core/capability"
	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/database/schema"
	"github.com/taibuivan/kirinukist/pkg/slice"
)

var _ capability.RelationExpander[TagWithVideos] = (*Tags)(nil)

// Tags expands tags with the videos carrying them.
type Tags struct {
	base   Base
	videos *Videos
}

func NewTags(base Base, videos *Videos) *Tags {
	return &Tags{base: base, videos: videos}
}

// Expand returns tag id with its videos. Every video is cross-enriched with all of its
// tags and its author.
func (expander *Tags) Expand(context context.Context, id string) (*TagWithVideos, error) {
	t, err := expander.base.Tags.Get(context, id)
	if err != nil {
		return nil, apperr.Step("load_tag", err)
	}

	expanded, err := expander.expandMany(context, []*tag.Tag{t})
	if err != nil {
		return nil, apperr.Step("expand_tag", err)
	}
	return expanded[0], nil
}

// ExpandAll returns [Tags.Expand] for every tag, in tag order. The whole list costs
// one junction read, one video read and one video expansion.
func (expander *Tags) ExpandAll(context context.Context) ([]*TagWithVideos, error) {
	tags, err := expander.base.Tags.List(context)
	if err != nil {
		return nil, apperr.Step("list_tags", err)
	}

	expanded, err := expander.expandMany(context, tags)
	if err != nil {
		return nil, apperr.Step("expand_tags", err)
	}
	return expanded, nil
}

func (expander *Tags) expandMany(context context.Context, tags []*tag.Tag) ([]*TagWithVideos, error) {
	if len(tags) == 0 {
		return []*TagWithVideos{}, nil
	}

	tagIDs := slice.Map(tags, func(t *tag.Tag) string { return t.ID })
	videoIDsByTag, err := expander.base.Tags.VideoIDsByTag(context, tagIDs)
	if err != nil {
		return nil, apperr.Step("load_tag_videos", err)
	}

	var videoIDs []string
	for _, id := range tagIDs {
		videoIDs = append(videoIDs, videoIDsByTag[id]...)
	}

	videos, err := expander.videos.ExpandIDs(context, slice.Unique(videoIDs), schema.VideoTag.Table)
	if err != nil {
		return nil, apperr.Step("expand_tag_videos", err)
	}
	byID := slice.KeyBy(videos, func(v *VideoWithTagsAndAuthor) string { return v.ID })

	expanded := make([]*TagWithVideos, 0, len(tags))
	for _, t := range tags {
		items := make([]*VideoWithTagsAndAuthor, 0, len(videoIDsByTag[t.ID]))
		for _, videoID := range videoIDsByTag[t.ID] {
			items = append(items, byID[videoID])
		}
		expanded = append(expanded, &TagWithVideos{Tag: t, Videos: items})
	}
	return expanded, nil
}
