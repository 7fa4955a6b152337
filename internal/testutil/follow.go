// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"context"
	"slices"

	"github.com/taibuivan/kirinukist/internal/core/follow"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

type followRepository struct{ *Store }

// Follows returns the store's [follow.Repository].
func (s *Store) Follows() follow.Repository {
	return followRepository{s}
}

// FollowRows returns how many stored edges match the pair.
func (s *Store) FollowRows(followerID, followingID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, f := range s.follows {
		if f.followerID == followerID && f.followingID == followingID {
			count++
		}
	}
	return count
}

func (r followRepository) Exists(_ context.Context, followerID, followingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("follow.Exists"); err != nil {
		return false, err
	}
	return r.followIndex(followerID, followingID) >= 0, nil
}

func (r followRepository) Insert(_ context.Context, followerID, followingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("follow.Insert"); err != nil {
		return err
	}

	if r.followIndex(followerID, followingID) >= 0 {
		return apperr.Conflict("Follow already exists")
	}
	r.follows = append(r.follows, followRow{followerID: followerID, followingID: followingID})
	return nil
}

func (r followRepository) Delete(_ context.Context, followerID, followingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("follow.Delete"); err != nil {
		return err
	}

	i := r.followIndex(followerID, followingID)
	if i < 0 {
		return apperr.NotFound("Follow")
	}
	r.follows = slices.Delete(r.follows, i, i+1)
	return nil
}

func (r followRepository) FollowerIDs(_ context.Context, authorID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("follow.FollowerIDs"); err != nil {
		return nil, err
	}

	ids := []string{}
	for _, f := range r.follows {
		if f.followingID == authorID {
			ids = append(ids, f.followerID)
		}
	}
	return ids, nil
}

func (r followRepository) FollowingIDs(_ context.Context, authorID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("follow.FollowingIDs"); err != nil {
		return nil, err
	}

	ids := []string{}
	for _, f := range r.follows {
		if f.followerID == authorID {
			ids = append(ids, f.followingID)
		}
	}
	return ids, nil
}

func (r followRepository) CountFollowers(_ context.Context, authorID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("follow.CountFollowers"); err != nil {
		return 0, err
	}

	count := 0
	for _, f := range r.follows {
		if f.followingID == authorID {
			count++
		}
	}
	return count, nil
}

func (r followRepository) CountFollowing(_ context.Context, authorID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("follow.CountFollowing"); err != nil {
		return 0, err
	}

	count := 0
	for _, f := range r.follows {
		if f.followerID == authorID {
			count++
		}
	}
	return count, nil
}

func (s *Store) followIndex(followerID, followingID string) int {
	return slices.IndexFunc(s.follows, func(f followRow) bool {
		return f.followerID == followerID && f.followingID == followingID
	})
}
