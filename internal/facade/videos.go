// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"context"
	"fmt"

	"github.com/taibuivan/kirinukist/internal/core/relation"
	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/core/video"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/database/schema"
)

// Match selects union or intersection semantics for a tag search.
type Match string

const (
	MatchAny Match = "any"
	MatchAll Match = "all"
)

// ParseMatch resolves "any" or "all". The empty string is [MatchAny].
func ParseMatch(value string) (Match, error) {
	switch Match(value) {
	case "", MatchAny:
		return MatchAny, nil
	case MatchAll:
		return MatchAll, nil
	default:
		return "", apperr.ValidationError(fmt.Sprintf("Unknown match %q", value),
			apperr.FieldError{Field: "match", Message: "Must be any or all"},
		)
	}
}

// Videos is the video facade.
type Videos struct {
	base     relation.Base
	expander *relation.Videos
	search   *tag.Search
}

/*
Get returns video id in the requested view.

Views:
  - Basic: *video.Video
  - WithTagsAndAuthor: *relation.VideoWithTagsAndAuthor
*/
func (facade *Videos) Get(context context.Context, id string, view View) (any, error) {
	switch view {
	case ViewBasic:
		return facade.base.Videos.Get(context, id)
	case ViewWithTagsAndAuthor:
		return facade.expander.Expand(context, id)
	default:
		return nil, unsupported("videos", view)
	}
}

// List returns every video as Basic ([]*video.Video) or WithTagsAndAuthor
// ([]*relation.VideoWithTagsAndAuthor).
func (facade *Videos) List(context context.Context, view View) (any, error) {
	switch view {
	case ViewBasic:
		return facade.base.Videos.List(context)
	case ViewWithTagsAndAuthor:
		videos, err := facade.base.Videos.List(context)
		if err != nil {
			return nil, err
		}
		expanded, err := facade.expander.ExpandMany(context, videos)
		if err != nil {
			return nil, apperr.Step("expand_videos", err)
		}
		return expanded, nil
	default:
		return nil, unsupported("video lists", view)
	}
}

// Search returns the ids of videos tagged with any or all of tagIDs. With expand, the
// videos are returned as []*relation.VideoWithTagsAndAuthor instead of []string.
func (facade *Videos) Search(context context.Context, tagIDs []string, match Match, expand bool) (any, error) {
	match, err := ParseMatch(string(match))
	if err != nil {
		return nil, err
	}

	var ids []string
	if match == MatchAll {
		ids, err = facade.search.VideosByAllTags(context, tagIDs)
	} else {
		ids, err = facade.search.VideosByAnyTag(context, tagIDs)
	}
	if err != nil {
		return nil, err
	}

	if !expand {
		return ids, nil
	}
	return facade.expander.ExpandIDs(context, ids, schema.VideoTag.Table)
}

// # Writes

// Create stores a clip owned by callerID.
func (facade *Videos) Create(context context.Context, callerID string, input video.CreateInput) (string, error) {
	input.AuthorID = callerID
	if err := mustExist(context, facade.base.Authors.Get, callerID); err != nil {
		return "", err
	}
	return facade.base.Videos.Create(context, input)
}

func (facade *Videos) Update(context context.Context, callerID, id string, patch video.Patch) error {
	if err := facade.owned(context, callerID, id); err != nil {
		return err
	}
	return facade.base.Videos.Update(context, id, patch)
}

func (facade *Videos) Delete(context context.Context, callerID, id string) error {
	if err := facade.owned(context, callerID, id); err != nil {
		return err
	}
	return facade.base.Videos.Delete(context, id)
}

// AttachTag tags a video the caller owns. Video and tag must exist.
func (facade *Videos) AttachTag(context context.Context, callerID, videoID, tagID string) error {
	if err := facade.owned(context, callerID, videoID); err != nil {
		return err
	}
	if err := mustExist(context, facade.base.Tags.Get, tagID); err != nil {
		return err
	}
	return facade.base.Tags.Attach(context, videoID, tagID)
}

func (facade *Videos) DetachTag(context context.Context, callerID, videoID, tagID string) error {
	if err := facade.owned(context, callerID, videoID); err != nil {
		return err
	}
	return facade.base.Tags.Detach(context, videoID, tagID)
}

// owned loads video id and checks callerID owns it.
func (facade *Videos) owned(context context.Context, callerID, id string) error {
	v, err := facade.base.Videos.Get(context, id)
	if err != nil {
		return err
	}
	return mustOwn(callerID, v.AuthorID, "video")
}
