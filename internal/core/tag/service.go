// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/validate"
	"github.com/taibuivan/kirinukist/pkg/slice"
	"github.com/taibuivan/kirinukist/pkg/tagname"
	"github.com/taibuivan/kirinukist/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(context context.Context) ([]*Tag, error) {
	return service.repo.ListTags(context)
}

func (service *Service) Get(context context.Context, id string) (*Tag, error) {
	return service.repo.GetTag(context, id)
}

// GetMany fetches a batch of tags keyed by id. Ids with no row are absent from the map.
func (service *Service) GetMany(context context.Context, ids []string) (map[string]*Tag, error) {
	tags, err := service.repo.GetTags(context, ids)
	if err != nil {
		return nil, err
	}
	return slice.KeyBy(tags, func(t *Tag) string { return t.ID }), nil
}

// Create stores a tag under the cleaned form of its name. A name whose key collides
// with an existing tag is a conflict.
func (service *Service) Create(context context.Context, input CreateInput) (string, error) {
	name := tagname.Clean(input.Name)
	if err := validateName(name); err != nil {
		return "", err
	}

	if err := service.ensureNameFree(context, name, ""); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	tag := &Tag{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.repo.CreateTag(context, tag); err != nil {
		return "", err
	}

	service.logger.Info("tag_created", slog.String("tag_id", tag.ID), slog.String("name", tag.Name))
	return tag.ID, nil
}

func (service *Service) Update(context context.Context, id string, patch Patch) error {
	if _, err := service.repo.GetTag(context, id); err != nil {
		return err
	}

	if patch.Name != nil {
		name := tagname.Clean(*patch.Name)
		if err := validateName(name); err != nil {
			return err
		}
		if err := service.ensureNameFree(context, name, id); err != nil {
			return err
		}
		patch.Name = &name
	}

	if err := service.repo.UpdateTag(context, id, patch, time.Now().UTC()); err != nil {
		return err
	}

	service.logger.Info("tag_updated", slog.String("tag_id", id))
	return nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if _, err := service.repo.GetTag(context, id); err != nil {
		return err
	}

	if err := service.repo.DeleteTag(context, id); err != nil {
		return err
	}

	service.logger.Warn("tag_deleted", slog.String("tag_id", id))
	return nil
}

// # Video/Tag junction

// ListByVideo returns the tags attached to a video.
func (service *Service) ListByVideo(context context.Context, videoID string) ([]*Tag, error) {
	byVideo, err := service.ListByVideos(context, []string{videoID})
	if err != nil {
		return nil, err
	}
	return byVideo[videoID], nil
}

// ListByVideos returns the tags of every video in videoIDs with one junction read and
// one tag read. Every requested video has an entry, possibly empty.
func (service *Service) ListByVideos(context context.Context, videoIDs []string) (map[string][]*Tag, error) {
	links, err := service.repo.ListVideoTagsByVideos(context, videoIDs)
	if err != nil {
		return nil, err
	}

	tagIDs := slice.Unique(slice.Map(links, func(link *VideoTag) string { return link.TagID }))
	tags, err := service.GetMany(context, tagIDs)
	if err != nil {
		return nil, err
	}

	byVideo := make(map[string][]*Tag, len(videoIDs))
	for _, id := range videoIDs {
		byVideo[id] = []*Tag{}
	}
	for _, link := range links {
		tag, ok := tags[link.TagID]
		if !ok {
			return nil, apperr.Database("resolve_video_tags", apperr.NotFound("Tag "+link.TagID))
		}
		byVideo[link.VideoID] = append(byVideo[link.VideoID], tag)
	}
	return byVideo, nil
}

// ListVideoIDs returns the ids of the videos carrying tagID.
func (service *Service) ListVideoIDs(context context.Context, tagID string) ([]string, error) {
	byTag, err := service.VideoIDsByTag(context, []string{tagID})
	if err != nil {
		return nil, err
	}
	return byTag[tagID], nil
}

// VideoIDsByTag returns the video ids of every tag in tagIDs with one junction read.
// Every requested tag has an entry, possibly empty.
func (service *Service) VideoIDsByTag(context context.Context, tagIDs []string) (map[string][]string, error) {
	links, err := service.repo.ListVideoTagsByTags(context, tagIDs)
	if err != nil {
		return nil, err
	}

	byTag := make(map[string][]string, len(tagIDs))
	for _, id := range tagIDs {
		byTag[id] = []string{}
	}
	for _, link := range links {
		byTag[link.TagID] = append(byTag[link.TagID], link.VideoID)
	}
	return byTag, nil
}

// Attach links a tag to a video. The pair must not already exist.
func (service *Service) Attach(context context.Context, videoID, tagID string) error {
	exists, err := service.repo.VideoTagExists(context, videoID, tagID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("Tag is already attached to this video")
	}

	if err := service.repo.InsertVideoTag(context, videoID, tagID); err != nil {
		return err
	}

	service.logger.Info("video_tag_attached", slog.String("video_id", videoID), slog.String("tag_id", tagID))
	return nil
}

// Detach removes a tag from a video.
func (service *Service) Detach(context context.Context, videoID, tagID string) error {
	exists, err := service.repo.VideoTagExists(context, videoID, tagID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Video tag")
	}

	if err := service.repo.DeleteVideoTag(context, videoID, tagID); err != nil {
		return err
	}

	service.logger.Info("video_tag_detached", slog.String("video_id", videoID), slog.String("tag_id", tagID))
	return nil
}

func validateName(name string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 50)
	return validator.Err()
}

// ensureNameFree fails with a conflict when another tag (not selfID) owns the key of name.
func (service *Service) ensureNameFree(context context.Context, name, selfID string) error {
	existing, err := service.repo.GetTagByKey(context, tagname.Key(name))
	if apperr.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return apperr.Conflict("Tag already exists")
}
