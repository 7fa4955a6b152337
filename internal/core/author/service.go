// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

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

func (service *Service) List(context context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(context)
}

func (service *Service) Get(context context.Context, id string) (*Author, error) {
	return service.repo.GetAuthor(context, id)
}

// GetMany fetches a batch of authors keyed by id. Ids with no row are absent from the map.
func (service *Service) GetMany(context context.Context, ids []string) (map[string]*Author, error) {
	authors, err := service.repo.GetAuthors(context, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*Author, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}
	return byID, nil
}

func (service *Service) Create(context context.Context, input CreateInput) (string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 100)

	if input.IconURL != "" {
		validator.URL(FieldIconURL, input.IconURL)
	}

	if err := validator.Err(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	author := &Author{
		ID:        uuid.New(),
		Name:      input.Name,
		IconURL:   input.IconURL,
		Bio:       input.Bio,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.repo.CreateAuthor(context, author); err != nil {
		return "", err
	}

	service.logger.Info("author_created", slog.String("author_id", author.ID), slog.String("name", author.Name))
	return author.ID, nil
}

func (service *Service) Update(context context.Context, id string, patch Patch) error {
	validator := &validate.Validator{}
	if patch.Name != nil {
		validator.Required(FieldName, *patch.Name).MaxLen(FieldName, *patch.Name, 100)
	}
	if patch.IconURL != nil && *patch.IconURL != "" {
		validator.URL(FieldIconURL, *patch.IconURL)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.repo.GetAuthor(context, id); err != nil {
		return err
	}

	if err := service.repo.UpdateAuthor(context, id, patch, time.Now().UTC()); err != nil {
		return err
	}

	service.logger.Info("author_updated", slog.String("author_id", id))
	return nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if _, err := service.repo.GetAuthor(context, id); err != nil {
		return err
	}

	if err := service.repo.DeleteAuthor(context, id); err != nil {
		return err
	}

	service.logger.Warn("author_deleted", slog.String("author_id", id))
	return nil
}
