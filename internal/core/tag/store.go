// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"time"
)

type Repository interface {
	ListTags(context context.Context) ([]*Tag, error)
	GetTag(context context.Context, id string) (*Tag, error)
	GetTags(context context.Context, ids []string) ([]*Tag, error)

	// GetTagByKey finds the tag whose normalized name equals key (see pkg/tagname).
	GetTagByKey(context context.Context, key string) (*Tag, error)

	CreateTag(context context.Context, t *Tag) error
	UpdateTag(context context.Context, id string, patch Patch, updatedAt time.Time) error
	DeleteTag(context context.Context, id string) error

	/*
		Junction reads are ordered by the id on the other side, which follows
		creation order for UUIDv7 identifiers.
	*/
	ListVideoTagsByVideos(context context.Context, videoIDs []string) ([]*VideoTag, error)
	ListVideoTagsByTags(context context.Context, tagIDs []string) ([]*VideoTag, error)
	VideoTagExists(context context.Context, videoID, tagID string) (bool, error)
	InsertVideoTag(context context.Context, videoID, tagID string) error
	DeleteVideoTag(context context.Context, videoID, tagID string) error
}
