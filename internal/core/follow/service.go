// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package follow

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/validate"
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

/*
Follow records that followerID follows targetID.

Parameters:
  - context: context.Context
  - followerID: string (caller)
  - targetID: string (author to follow)

Returns:
  - error: Validation on self-follow (checked first), Conflict if already following
*/
func (service *Service) Follow(context context.Context, followerID, targetID string) error {
	validator := &validate.Validator{}
	validator.Custom(FieldFollowingID, followerID == targetID, "Cannot follow yourself")
	if err := validator.Err(); err != nil {
		return err
	}

	exists, err := service.repo.Exists(context, followerID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("Already following this author")
	}

	if err := service.repo.Insert(context, followerID, targetID); err != nil {
		return err
	}

	service.logger.Info("author_followed",
		slog.String("follower_id", followerID),
		slog.String("following_id", targetID),
	)
	return nil
}

/*
Unfollow removes the edge followerID -> targetID.

Returns:
  - error: NotFound if the edge does not exist
*/
func (service *Service) Unfollow(context context.Context, followerID, targetID string) error {
	exists, err := service.repo.Exists(context, followerID, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Follow")
	}

	if err := service.repo.Delete(context, followerID, targetID); err != nil {
		return err
	}

	service.logger.Info("author_unfollowed",
		slog.String("follower_id", followerID),
		slog.String("following_id", targetID),
	)
	return nil
}

// IsFollowing reports whether the edge exists. Absence is false, never an error.
func (service *Service) IsFollowing(context context.Context, followerID, targetID string) (bool, error) {
	return service.repo.Exists(context, followerID, targetID)
}

func (service *Service) FollowerIDs(context context.Context, authorID string) ([]string, error) {
	return service.repo.FollowerIDs(context, authorID)
}

func (service *Service) FollowingIDs(context context.Context, authorID string) ([]string, error) {
	return service.repo.FollowingIDs(context, authorID)
}

func (service *Service) FollowerCount(context context.Context, authorID string) (int, error) {
	return service.repo.CountFollowers(context, authorID)
}

func (service *Service) FollowingCount(context context.Context, authorID string) (int, error) {
	return service.repo.CountFollowing(context, authorID)
}
