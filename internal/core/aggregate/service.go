// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package aggregate

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/core/capability"
	"github.com/taibuivan/kirinukist/internal/core/follow"
	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/core/relation"
	"github.com/taibuivan/kirinukist/internal/core/video"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/constants"
)

type Service struct {
	authors *author.Service
	follows *follow.Service

	followers capability.CountAggregator
	videos    capability.CountAggregator
	playlists capability.CountAggregator

	logger *slog.Logger
}

func NewService(
	authors *author.Service,
	follows *follow.Service,
	videos *video.Service,
	playlists *playlist.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		authors:   authors,
		follows:   follows,
		followers: capability.CountFunc(follows.FollowerCount),
		videos:    capability.CountFunc(videos.CountByAuthor),
		playlists: capability.CountFunc(playlists.CountByAuthor),
		logger:    logger,
	}
}

// # Single counts

// FollowerCount counts the authors following authorID.
func (service *Service) FollowerCount(context context.Context, authorID string) (int, error) {
	count, err := service.followers.Count(context, authorID)
	return count, apperr.Step("count_followers", err)
}

// VideoCount counts the videos owned by authorID.
func (service *Service) VideoCount(context context.Context, authorID string) (int, error) {
	count, err := service.videos.Count(context, authorID)
	return count, apperr.Step("count_videos", err)
}

// PlaylistCount counts the playlists owned by authorID.
func (service *Service) PlaylistCount(context context.Context, authorID string) (int, error) {
	count, err := service.playlists.Count(context, authorID)
	return count, apperr.Step("count_playlists", err)
}

// # Compound views

// AuthorWithCounts returns the author and its three counts, computed concurrently.
func (service *Service) AuthorWithCounts(context context.Context, id string) (*AuthorWithCounts, error) {
	a, err := service.authors.Get(context, id)
	if err != nil {
		return nil, apperr.Step("load_author", err)
	}

	counts, err := service.counts(context, id)
	if err != nil {
		return nil, err
	}
	return &AuthorWithCounts{Author: a, Counts: counts}, nil
}

// AllAuthorsWithCounts returns every author with its counts, in author order. At most
// [constants.MaxFanOut] authors are counted at a time.
func (service *Service) AllAuthorsWithCounts(context context.Context) ([]*AuthorWithCounts, error) {
	authors, err := service.authors.List(context)
	if err != nil {
		return nil, apperr.Step("list_authors", err)
	}

	result := make([]*AuthorWithCounts, len(authors))

	group, groupContext := errgroup.WithContext(context)
	group.SetLimit(constants.MaxFanOut)
	for i, a := range authors {
		group.Go(func() error {
			counts, err := service.counts(groupContext, a.ID)
			if err != nil {
				return apperr.Database("count_author", err)
			}
			result[i] = &AuthorWithCounts{Author: a, Counts: counts}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// AuthorWithVideosPlaylistsAndCounts adds counts to an already expanded author. Only the
// follower count is queried; video and playlist counts are the lengths of the lists in hand.
func (service *Service) AuthorWithVideosPlaylistsAndCounts(
	context context.Context,
	expanded *relation.AuthorWithVideosAndPlaylists,
) (*AuthorWithVideosPlaylistsAndCounts, error) {
	followers, err := service.FollowerCount(context, expanded.ID)
	if err != nil {
		return nil, err
	}

	return &AuthorWithVideosPlaylistsAndCounts{
		AuthorWithVideosAndPlaylists: expanded,
		Counts: Counts{
			FollowerCount: followers,
			VideoCount:    len(expanded.Videos),
			PlaylistCount: len(expanded.Playlists),
		},
	}, nil
}

// counts runs the three count queries for authorID concurrently.
func (service *Service) counts(context context.Context, authorID string) (Counts, error) {
	var counts Counts

	group, groupContext := errgroup.WithContext(context)
	group.Go(func() (err error) {
		counts.FollowerCount, err = service.FollowerCount(groupContext, authorID)
		return err
	})
	group.Go(func() (err error) {
		counts.VideoCount, err = service.VideoCount(groupContext, authorID)
		return err
	})
	group.Go(func() (err error) {
		counts.PlaylistCount, err = service.PlaylistCount(groupContext, authorID)
		return err
	})

	if err := group.Wait(); err != nil {
		return Counts{}, err
	}
	return counts, nil
}

// # Follow listings

// Followers lists the authors following authorID, oldest edge first. withCounts adds
// each follower's counts. An author nobody follows yields an empty list.
func (service *Service) Followers(context context.Context, authorID string, withCounts bool) ([]*UserSummary, error) {
	return service.listing(context, authorID, withCounts, "followers", service.follows.FollowerIDs)
}

// Following lists the authors authorID follows, oldest edge first.
func (service *Service) Following(context context.Context, authorID string, withCounts bool) ([]*UserSummary, error) {
	return service.listing(context, authorID, withCounts, "following", service.follows.FollowingIDs)
}

func (service *Service) listing(
	context context.Context,
	authorID string,
	withCounts bool,
	side string,
	ids func(context.Context, string) ([]string, error),
) ([]*UserSummary, error) {
	if _, err := service.authors.Get(context, authorID); err != nil {
		return nil, apperr.Step("load_author", err)
	}

	step := "list_" + side
	authorIDs, err := ids(context, authorID)
	if err != nil {
		return nil, apperr.Step(step, err)
	}

	authors, err := service.authors.GetMany(context, authorIDs)
	if err != nil {
		return nil, apperr.Database(step, apperr.Step("load_authors", err))
	}

	summaries := make([]*UserSummary, len(authorIDs))
	for i, id := range authorIDs {
		a, ok := authors[id]
		if !ok {
			service.logger.Error("dangling_reference",
				slog.String("step", step),
				slog.String("author_id", authorID),
				slog.String("missing_author_id", id),
			)
			return nil, apperr.Database(step, fmt.Errorf("follow edge references missing author %s: %w", id, apperr.NotFound("Author")))
		}
		summaries[i] = &UserSummary{ID: a.ID, Name: a.Name, IconURL: a.IconURL}
	}

	if !withCounts {
		return summaries, nil
	}

	group, groupContext := errgroup.WithContext(context)
	group.SetLimit(constants.MaxFanOut)
	for _, summary := range summaries {
		group.Go(func() error {
			counts, err := service.counts(groupContext, summary.ID)
			if err != nil {
				return apperr.Database(step, err)
			}
			summary.Counts = &counts
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}
