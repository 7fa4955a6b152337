// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/kirinukist/internal/platform/validate"
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

func (service *Service) List(context context.Context) ([]*Video, error) {
	return service.repo.ListVideos(context)
}

func (service *Service) ListByAuthor(context context.Context, authorID string) ([]*Video, error) {
	return service.repo.ListVideosByAuthor(context, authorID)
}

func (service *Service) Get(context context.Context, id string) (*Video, error) {
	return service.repo.GetVideo(context, id)
}

// GetMany returns the videos with the given ids, ordered as ids. Ids with no row are skipped.
func (service *Service) GetMany(context context.Context, ids []string) ([]*Video, error) {
	videos, err := service.repo.GetVideos(context, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}

	ordered := make([]*Video, 0, len(videos))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}

func (service *Service) CountByAuthor(context context.Context, authorID string) (int, error) {
	return service.repo.CountVideosByAuthor(context, authorID)
}

func (service *Service) Create(context context.Context, input CreateInput) (string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Required(FieldURL, input.URL).URL(FieldURL, input.URL)
	validator.Required(FieldAuthorID, input.AuthorID)
	validateRange(validator, input.Start, input.End)

	if err := validator.Err(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	video := &Video{
		ID:        uuid.New(),
		Title:     input.Title,
		URL:       input.URL,
		Start:     input.Start,
		End:       input.End,
		AuthorID:  input.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.repo.CreateVideo(context, video); err != nil {
		return "", err
	}

	service.logger.Info("video_created",
		slog.String("video_id", video.ID),
		slog.String("author_id", video.AuthorID),
	)
	return video.ID, nil
}

func (service *Service) Update(context context.Context, id string, patch Patch) error {
	current, err := service.repo.GetVideo(context, id)
	if err != nil {
		return err
	}

	// Bounds are checked against the merged clip so a patch may move either end.
	merged := *current
	patch.Apply(&merged)

	validator := &validate.Validator{}
	if patch.Title != nil {
		validator.Required(FieldTitle, merged.Title).MaxLen(FieldTitle, merged.Title, 200)
	}
	if patch.URL != nil {
		validator.URL(FieldURL, merged.URL)
	}
	validateRange(validator, merged.Start, merged.End)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateVideo(context, id, patch, time.Now().UTC()); err != nil {
		return err
	}

	service.logger.Info("video_updated", slog.String("video_id", id))
	return nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if _, err := service.repo.GetVideo(context, id); err != nil {
		return err
	}

	if err := service.repo.DeleteVideo(context, id); err != nil {
		return err
	}

	service.logger.Warn("video_deleted", slog.String("video_id", id))
	return nil
}

func validateRange(validator *validate.Validator, start, end int) {
	validator.Min(FieldStart, start, 0)
	validator.Custom(FieldEnd, end <= start, "Must be after start")
}
