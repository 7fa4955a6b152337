// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/kirinukist/internal/core/aggregate"
	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/core/follow"
	"github.com/taibuivan/kirinukist/internal/core/relation"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

// AuthorWithBookmarks is an author with the videos and playlists they saved.
type AuthorWithBookmarks struct {
	*author.Author
	VideoBookmarks    []*relation.VideoWithTagsAndAuthor `json:"videoBookmarks"`
	PlaylistBookmarks []*relation.PlaylistWithVideos     `json:"playlistBookmarks"`
}

// Authors is the author facade.
type Authors struct {
	base      relation.Base
	follows   *follow.Service
	relations *relation.Authors
	bookmarks *relation.Bookmarks
	aggregate *aggregate.Service
	logger    *slog.Logger
}

// # Reads

/*
Get returns author id in the requested view.

Views:
  - Basic: *author.Author
  - WithVideos: *relation.AuthorWithVideos
  - WithPlaylists: *relation.AuthorWithPlaylists
  - WithVideosAndPlaylists: *relation.AuthorWithVideosAndPlaylists
  - WithCounts: *aggregate.AuthorWithCounts
  - WithVideosPlaylistsAndCounts: *aggregate.AuthorWithVideosPlaylistsAndCounts
  - WithBookmarks: *AuthorWithBookmarks
*/
func (facade *Authors) Get(context context.Context, id string, view View) (any, error) {
	switch view {
	case ViewBasic:
		return facade.base.Authors.Get(context, id)
	case ViewWithVideos:
		return facade.relations.WithVideos(context, id)
	case ViewWithPlaylists:
		return facade.relations.WithPlaylists(context, id)
	case ViewWithVideosAndPlaylists:
		return facade.relations.WithVideosAndPlaylists(context, id)
	case ViewWithCounts:
		return facade.aggregate.AuthorWithCounts(context, id)
	case ViewWithVideosPlaylistsAndCounts:
		expanded, err := facade.relations.WithVideosAndPlaylists(context, id)
		if err != nil {
			return nil, err
		}
		return facade.aggregate.AuthorWithVideosPlaylistsAndCounts(context, expanded)
	case ViewWithBookmarks:
		return facade.withBookmarks(context, id)
	default:
		return nil, unsupported("authors", view)
	}
}

/*
List returns every author in the requested view.

Views:
  - Basic: []*author.Author
  - WithCounts: []*aggregate.AuthorWithCounts
*/
func (facade *Authors) List(context context.Context, view View) (any, error) {
	switch view {
	case ViewBasic:
		return facade.base.Authors.List(context)
	case ViewWithCounts:
		return facade.aggregate.AllAuthorsWithCounts(context)
	default:
		return nil, unsupported("author lists", view)
	}
}

func (facade *Authors) withBookmarks(context context.Context, id string) (*AuthorWithBookmarks, error) {
	a, err := facade.base.Authors.Get(context, id)
	if err != nil {
		return nil, err
	}

	result := &AuthorWithBookmarks{Author: a}

	group, groupContext := errgroup.WithContext(context)
	group.Go(func() (err error) {
		result.VideoBookmarks, err = facade.bookmarks.Videos(groupContext, id)
		return apperr.Step("video_bookmarks", err)
	})
	group.Go(func() (err error) {
		result.PlaylistBookmarks, err = facade.bookmarks.Playlists(groupContext, id)
		return apperr.Step("playlist_bookmarks", err)
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// # Writes

func (facade *Authors) Create(context context.Context, input author.CreateInput) (string, error) {
	return facade.base.Authors.Create(context, input)
}

// Update patches the caller's own profile.
func (facade *Authors) Update(context context.Context, callerID, id string, patch author.Patch) error {
	if err := mustOwn(callerID, id, "profile"); err != nil {
		return err
	}
	return facade.base.Authors.Update(context, id, patch)
}

// Delete removes the caller's own profile. An author who still owns videos or
// playlists cannot be deleted.
func (facade *Authors) Delete(context context.Context, callerID, id string) error {
	if err := mustOwn(callerID, id, "profile"); err != nil {
		return err
	}
	if err := mustExist(context, facade.base.Authors.Get, id); err != nil {
		return err
	}

	videos, err := facade.aggregate.VideoCount(context, id)
	if err != nil {
		return err
	}
	playlists, err := facade.aggregate.PlaylistCount(context, id)
	if err != nil {
		return err
	}
	if videos > 0 || playlists > 0 {
		facade.logger.Warn("author_delete_restricted",
			slog.String("author_id", id),
			slog.Int("video_count", videos),
			slog.Int("playlist_count", playlists),
		)
		return apperr.Conflict("Author still owns videos or playlists")
	}

	return facade.base.Authors.Delete(context, id)
}

// # Follows

// Follow makes callerID follow targetID. Self-follow is rejected before anything else
// is looked at; otherwise both authors must exist.
func (facade *Authors) Follow(context context.Context, callerID, targetID string) error {
	if callerID != targetID {
		if err := facade.bothAuthorsExist(context, callerID, targetID); err != nil {
			return err
		}
	}
	return facade.follows.Follow(context, callerID, targetID)
}

func (facade *Authors) Unfollow(context context.Context, callerID, targetID string) error {
	return facade.follows.Unfollow(context, callerID, targetID)
}

func (facade *Authors) IsFollowing(context context.Context, followerID, targetID string) (bool, error) {
	return facade.follows.IsFollowing(context, followerID, targetID)
}

func (facade *Authors) Followers(context context.Context, id string, withCounts bool) ([]*aggregate.UserSummary, error) {
	return facade.aggregate.Followers(context, id, withCounts)
}

func (facade *Authors) Following(context context.Context, id string, withCounts bool) ([]*aggregate.UserSummary, error) {
	return facade.aggregate.Following(context, id, withCounts)
}

func (facade *Authors) bothAuthorsExist(context context.Context, ids ...string) error {
	for _, id := range ids {
		if err := mustExist(context, facade.base.Authors.Get, id); err != nil {
			return err
		}
	}
	return nil
}

// # Bookmarks

// BookmarkVideo saves videoID for callerID. Both must exist.
func (facade *Authors) BookmarkVideo(context context.Context, callerID, videoID string) error {
	if err := mustExist(context, facade.base.Authors.Get, callerID); err != nil {
		return err
	}
	if err := mustExist(context, facade.base.Videos.Get, videoID); err != nil {
		return err
	}
	return facade.base.VideoBookmarks.Bookmark(context, callerID, videoID)
}

func (facade *Authors) UnbookmarkVideo(context context.Context, callerID, videoID string) error {
	return facade.base.VideoBookmarks.Unbookmark(context, callerID, videoID)
}

func (facade *Authors) HasBookmarkedVideo(context context.Context, authorID, videoID string) (bool, error) {
	return facade.base.VideoBookmarks.HasBookmarked(context, authorID, videoID)
}

// BookmarkPlaylist saves playlistID for callerID. Both must exist.
func (facade *Authors) BookmarkPlaylist(context context.Context, callerID, playlistID string) error {
	if err := mustExist(context, facade.base.Authors.Get, callerID); err != nil {
		return err
	}
	if err := mustExist(context, facade.base.Playlists.Get, playlistID); err != nil {
		return err
	}
	return facade.base.PlaylistBookmarks.Bookmark(context, callerID, playlistID)
}

func (facade *Authors) UnbookmarkPlaylist(context context.Context, callerID, playlistID string) error {
	return facade.base.PlaylistBookmarks.Unbookmark(context, callerID, playlistID)
}

func (facade *Authors) HasBookmarkedPlaylist(context context.Context, authorID, playlistID string) (bool, error) {
	return facade.base.PlaylistBookmarks.HasBookmarked(context, authorID, playlistID)
}

// BookmarkedVideos returns the expanded videos authorID saved.
func (facade *Authors) BookmarkedVideos(context context.Context, authorID string) ([]*relation.VideoWithTagsAndAuthor, error) {
	return facade.bookmarks.Videos(context, authorID)
}

// BookmarkedPlaylists returns the expanded playlists authorID saved.
func (facade *Authors) BookmarkedPlaylists(context context.Context, authorID string) ([]*relation.PlaylistWithVideos, error) {
	return facade.bookmarks.Playlists(context, authorID)
}
