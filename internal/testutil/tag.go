// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/pkg/tagname"
)

type tagRepository struct{ *Store }

// Tags returns the store's [tag.Repository].
func (s *Store) Tags() tag.Repository {
	return tagRepository{s}
}

func cloneTag(t *tag.Tag) *tag.Tag {
	c := *t
	return &c
}

func (r tagRepository) ListTags(_ context.Context) ([]*tag.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("tag.ListTags"); err != nil {
		return nil, err
	}

	result := make([]*tag.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		result = append(result, cloneTag(t))
	}
	return result, nil
}

func (r tagRepository) GetTag(_ context.Context, id string) (*tag.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("tag.GetTag"); err != nil {
		return nil, err
	}

	if i := r.tagIndex(id); i >= 0 {
		return cloneTag(r.tags[i]), nil
	}
	return nil, apperr.NotFound("Tag")
}

func (r tagRepository) GetTags(_ context.Context, ids []string) ([]*tag.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("tag.GetTags"); err != nil {
		return nil, err
	}

	result := []*tag.Tag{}
	for _, t := range r.tags {
		if slices.Contains(ids, t.ID) {
			result = append(result, cloneTag(t))
		}
	}
	return result, nil
}

func (r tagRepository) GetTagByKey(_ context.Context, key string) (*tag.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("tag.GetTagByKey"); err != nil {
		return nil, err
	}

	for _, t := range r.tags {
		if tagname.Key(t.Name) == key {
			return cloneTag(t), nil
		}
	}
	return nil, apperr.NotFound("Tag")
}

func (r tagRepository) CreateTag(_ context.Context, t *tag.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("tag.CreateTag"); err != nil {
		return err
	}

	if r.tagIndex(t.ID) >= 0 || r.tagKeyTaken(t.Name, "") {
		return apperr.Conflict("Tag already exists")
	}
	r.tags = append(r.tags, cloneTag(t))
	return nil
}

func (r tagRepository) UpdateTag(_ context.Context, id string, patch tag.Patch, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("tag.UpdateTag"); err != nil {
		return err
	}

	i := r.tagIndex(id)
	if i < 0 {
		return apperr.NotFound("Tag")
	}
	if patch.Name != nil && r.tagKeyTaken(*patch.Name, id) {
		return apperr.Conflict("Tag already exists")
	}
	patch.Apply(r.tags[i])
	r.tags[i].UpdatedAt = updatedAt
	return nil
}

func (r tagRepository) DeleteTag(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("tag.DeleteTag"); err != nil {
		return err
	}

	i := r.tagIndex(id)
	if i < 0 {
		return apperr.NotFound("Tag")
	}
	r.tags = slices.Delete(r.tags, i, i+1)
	r.videoTags = slices.DeleteFunc(r.videoTags, func(link *tag.VideoTag) bool { return link.TagID == id })
	return nil
}

// # Video/Tag junction

func (r tagRepository) ListVideoTagsByVideos(_ context.Context, videoIDs []string) ([]*tag.VideoTag, error) {
	return r.links("tag.ListVideoTagsByVideos",
		func(link *tag.VideoTag) bool { return slices.Contains(videoIDs, link.VideoID) },
		func(a, b *tag.VideoTag) int { return cmp.Or(cmp.Compare(a.VideoID, b.VideoID), cmp.Compare(a.TagID, b.TagID)) },
	)
}

func (r tagRepository) ListVideoTagsByTags(_ context.Context, tagIDs []string) ([]*tag.VideoTag, error) {
	return r.links("tag.ListVideoTagsByTags",
		func(link *tag.VideoTag) bool { return slices.Contains(tagIDs, link.TagID) },
		func(a, b *tag.VideoTag) int { return cmp.Or(cmp.Compare(a.TagID, b.TagID), cmp.Compare(a.VideoID, b.VideoID)) },
	)
}

func (r tagRepository) VideoTagExists(_ context.Context, videoID, tagID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("tag.VideoTagExists"); err != nil {
		return false, err
	}
	return r.videoTagIndex(videoID, tagID) >= 0, nil
}

func (r tagRepository) InsertVideoTag(_ context.Context, videoID, tagID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("tag.InsertVideoTag"); err != nil {
		return err
	}

	if r.videoTagIndex(videoID, tagID) >= 0 {
		return apperr.Conflict("Video tag already exists")
	}
	r.videoTags = append(r.videoTags, &tag.VideoTag{VideoID: videoID, TagID: tagID})
	return nil
}

func (r tagRepository) DeleteVideoTag(_ context.Context, videoID, tagID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("tag.DeleteVideoTag"); err != nil {
		return err
	}

	i := r.videoTagIndex(videoID, tagID)
	if i < 0 {
		return apperr.NotFound("Video tag")
	}
	r.videoTags = slices.Delete(r.videoTags, i, i+1)
	return nil
}

func (r tagRepository) links(method string, keep func(*tag.VideoTag) bool, order func(a, b *tag.VideoTag) int) ([]*tag.VideoTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(method); err != nil {
		return nil, err
	}

	result := []*tag.VideoTag{}
	for _, link := range r.videoTags {
		if keep(link) {
			c := *link
			result = append(result, &c)
		}
	}
	slices.SortStableFunc(result, order)
	return result, nil
}

func (s *Store) tagIndex(id string) int {
	return slices.IndexFunc(s.tags, func(t *tag.Tag) bool { return t.ID == id })
}

func (s *Store) tagKeyTaken(name, selfID string) bool {
	key := tagname.Key(name)
	return slices.ContainsFunc(s.tags, func(t *tag.Tag) bool { return t.ID != selfID && tagname.Key(t.Name) == key })
}

func (s *Store) videoTagIndex(videoID, tagID string) int {
	return slices.IndexFunc(s.videoTags, func(link *tag.VideoTag) bool {
		return link.VideoID == videoID && link.TagID == tagID
	})
}
