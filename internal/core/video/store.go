// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"time"
)

type Repository interface {
	ListVideos(context context.Context) ([]*Video, error)
	ListVideosByAuthor(context context.Context, authorID string) ([]*Video, error)
	GetVideo(context context.Context, id string) (*Video, error)

	// GetVideos returns the videos whose id is in ids, in insertion order. Unknown ids are skipped.
	GetVideos(context context.Context, ids []string) ([]*Video, error)

	CountVideosByAuthor(context context.Context, authorID string) (int, error)

	CreateVideo(context context.Context, v *Video) error
	UpdateVideo(context context.Context, id string, patch Patch, updatedAt time.Time) error
	DeleteVideo(context context.Context, id string) error
}
