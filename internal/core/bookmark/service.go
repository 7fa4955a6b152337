// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookmark

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	kind   Kind
}

func NewService(repo Repository, logger *slog.Logger, kind Kind) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With(slog.String("bookmark_kind", string(kind))),
		kind:   kind,
	}
}

// Kind reports which target this service bookmarks.
func (service *Service) Kind() Kind {
	return service.kind
}

// Bookmark saves targetID for authorID. Saving twice is a conflict.
func (service *Service) Bookmark(context context.Context, authorID, targetID string) error {
	exists, err := service.repo.Exists(context, authorID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("Already bookmarked")
	}

	b := &Bookmark{AuthorID: authorID, TargetID: targetID, CreatedAt: time.Now().UTC()}
	if err := service.repo.Insert(context, b); err != nil {
		return err
	}

	service.logger.Info("bookmark_added", slog.String("author_id", authorID), slog.String("target_id", targetID))
	return nil
}

// Unbookmark removes a saved target.
func (service *Service) Unbookmark(context context.Context, authorID, targetID string) error {
	exists, err := service.repo.Exists(context, authorID, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Bookmark")
	}

	if err := service.repo.Delete(context, authorID, targetID); err != nil {
		return err
	}

	service.logger.Info("bookmark_removed", slog.String("author_id", authorID), slog.String("target_id", targetID))
	return nil
}

// HasBookmarked reports whether the pair exists. Absence is false, never an error.
func (service *Service) HasBookmarked(context context.Context, authorID, targetID string) (bool, error) {
	return service.repo.Exists(context, authorID, targetID)
}

func (service *Service) TargetIDs(context context.Context, authorID string) ([]string, error) {
	return service.repo.TargetIDs(context, authorID)
}
