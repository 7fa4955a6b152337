// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"context"
	"slices"
	"time"

	"github.com/taibuivan/kirinukist/internal/core/bookmark"
	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/core/video"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

type videoRepository struct{ *Store }

// Videos returns the store's [video.Repository].
func (s *Store) Videos() video.Repository {
	return videoRepository{s}
}

func cloneVideo(v *video.Video) *video.Video {
	c := *v
	return &c
}

func (r videoRepository) ListVideos(_ context.Context) ([]*video.Video, error) {
	return r.filter("video.ListVideos", func(*video.Video) bool { return true })
}

func (r videoRepository) ListVideosByAuthor(_ context.Context, authorID string) ([]*video.Video, error) {
	return r.filter("video.ListVideosByAuthor", func(v *video.Video) bool { return v.AuthorID == authorID })
}

func (r videoRepository) GetVideos(_ context.Context, ids []string) ([]*video.Video, error) {
	return r.filter("video.GetVideos", func(v *video.Video) bool { return slices.Contains(ids, v.ID) })
}

func (r videoRepository) GetVideo(_ context.Context, id string) (*video.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("video.GetVideo"); err != nil {
		return nil, err
	}

	if i := r.videoIndex(id); i >= 0 {
		return cloneVideo(r.videos[i]), nil
	}
	return nil, apperr.NotFound("Video")
}

func (r videoRepository) CountVideosByAuthor(_ context.Context, authorID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("video.CountVideosByAuthor"); err != nil {
		return 0, err
	}

	count := 0
	for _, v := range r.videos {
		if v.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (r videoRepository) CreateVideo(_ context.Context, v *video.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("video.CreateVideo"); err != nil {
		return err
	}

	if r.videoIndex(v.ID) >= 0 {
		return apperr.Conflict("Video already exists")
	}
	r.videos = append(r.videos, cloneVideo(v))
	return nil
}

func (r videoRepository) UpdateVideo(_ context.Context, id string, patch video.Patch, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("video.UpdateVideo"); err != nil {
		return err
	}

	i := r.videoIndex(id)
	if i < 0 {
		return apperr.NotFound("Video")
	}
	patch.Apply(r.videos[i])
	r.videos[i].UpdatedAt = updatedAt
	return nil
}

func (r videoRepository) DeleteVideo(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("video.DeleteVideo"); err != nil {
		return err
	}

	i := r.videoIndex(id)
	if i < 0 {
		return apperr.NotFound("Video")
	}
	r.videos = slices.Delete(r.videos, i, i+1)

	r.videoTags = slices.DeleteFunc(r.videoTags, func(link *tag.VideoTag) bool { return link.VideoID == id })
	r.entries = slices.DeleteFunc(r.entries, func(e *playlist.Entry) bool { return e.VideoID == id })
	r.bookmarks[bookmark.KindVideo] = deleteBookmarksBy(r.bookmarks[bookmark.KindVideo], "", id)
	return nil
}

func (r videoRepository) filter(method string, keep func(*video.Video) bool) ([]*video.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(method); err != nil {
		return nil, err
	}

	result := []*video.Video{}
	for _, v := range r.videos {
		if keep(v) {
			result = append(result, cloneVideo(v))
		}
	}
	return result, nil
}

func (s *Store) videoIndex(id string) int {
	return slices.IndexFunc(s.videos, func(v *video.Video) bool { return v.ID == id })
}
