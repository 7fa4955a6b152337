// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/kirinukist/internal/platform/apperr"
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

func (service *Service) List(context context.Context) ([]*Playlist, error) {
	return service.repo.ListPlaylists(context)
}

func (service *Service) ListByAuthor(context context.Context, authorID string) ([]*Playlist, error) {
	return service.repo.ListPlaylistsByAuthor(context, authorID)
}

func (service *Service) Get(context context.Context, id string) (*Playlist, error) {
	return service.repo.GetPlaylist(context, id)
}

// GetMany returns the playlists with the given ids, ordered as ids. Ids with no row are skipped.
func (service *Service) GetMany(context context.Context, ids []string) ([]*Playlist, error) {
	playlists, err := service.repo.GetPlaylists(context, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*Playlist, len(playlists))
	for _, p := range playlists {
		byID[p.ID] = p
	}

	ordered := make([]*Playlist, 0, len(playlists))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

func (service *Service) CountByAuthor(context context.Context, authorID string) (int, error) {
	return service.repo.CountPlaylistsByAuthor(context, authorID)
}

func (service *Service) Create(context context.Context, input CreateInput) (string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Required(FieldAuthorID, input.AuthorID)

	if err := validator.Err(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	playlist := &Playlist{
		ID:        uuid.New(),
		Title:     input.Title,
		AuthorID:  input.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.repo.CreatePlaylist(context, playlist); err != nil {
		return "", err
	}

	service.logger.Info("playlist_created",
		slog.String("playlist_id", playlist.ID),
		slog.String("author_id", playlist.AuthorID),
	)
	return playlist.ID, nil
}

func (service *Service) Update(context context.Context, id string, patch Patch) error {
	if patch.Title != nil {
		validator := &validate.Validator{}
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, 200)
		if err := validator.Err(); err != nil {
			return err
		}
	}

	if _, err := service.repo.GetPlaylist(context, id); err != nil {
		return err
	}

	if err := service.repo.UpdatePlaylist(context, id, patch, time.Now().UTC()); err != nil {
		return err
	}

	service.logger.Info("playlist_updated", slog.String("playlist_id", id))
	return nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if _, err := service.repo.GetPlaylist(context, id); err != nil {
		return err
	}

	if err := service.repo.DeletePlaylist(context, id); err != nil {
		return err
	}

	service.logger.Warn("playlist_deleted", slog.String("playlist_id", id))
	return nil
}

// # Entries

// ListEntries returns the entries of a playlist ordered by "order" ascending.
func (service *Service) ListEntries(context context.Context, playlistID string) ([]*Entry, error) {
	return service.repo.ListEntries(context, []string{playlistID})
}

// ListEntriesByPlaylist returns the ordered entries of several playlists with one read.
// Every requested playlist has an entry, possibly empty.
func (service *Service) ListEntriesByPlaylist(context context.Context, playlistIDs []string) (map[string][]*Entry, error) {
	entries, err := service.repo.ListEntries(context, playlistIDs)
	if err != nil {
		return nil, err
	}

	byPlaylist := make(map[string][]*Entry, len(playlistIDs))
	for _, id := range playlistIDs {
		byPlaylist[id] = []*Entry{}
	}
	for _, entry := range entries {
		byPlaylist[entry.PlaylistID] = append(byPlaylist[entry.PlaylistID], entry)
	}
	return byPlaylist, nil
}

// AddVideo places a video in a playlist. A nil order appends after the current last entry.
// A video appears at most once per playlist and an order is held by at most one entry.
func (service *Service) AddVideo(context context.Context, playlistID, videoID string, order *int) error {
	if _, err := service.repo.GetPlaylist(context, playlistID); err != nil {
		return err
	}

	entries, err := service.ListEntries(context, playlistID)
	if err != nil {
		return err
	}

	next := 1
	for _, entry := range entries {
		if entry.VideoID == videoID {
			return apperr.Conflict("Video is already in this playlist")
		}
		if order != nil && entry.Order == *order {
			return apperr.Conflict("Order is already taken in this playlist")
		}
		if entry.Order >= next {
			next = entry.Order + 1
		}
	}
	if order != nil {
		next = *order
	}

	entry := &Entry{PlaylistID: playlistID, VideoID: videoID, Order: next}
	if err := service.repo.InsertEntry(context, entry); err != nil {
		return err
	}

	service.logger.Info("playlist_video_added",
		slog.String("playlist_id", playlistID),
		slog.String("video_id", videoID),
		slog.Int("order", next),
	)
	return nil
}

// MoveVideo changes the position of a video already in the playlist.
func (service *Service) MoveVideo(context context.Context, playlistID, videoID string, order int) error {
	entries, err := service.ListEntries(context, playlistID)
	if err != nil {
		return err
	}

	var current *Entry
	for _, entry := range entries {
		if entry.VideoID == videoID {
			current = entry
		}
	}
	if current == nil {
		return apperr.NotFound("Playlist entry")
	}
	if current.Order == order {
		return nil
	}

	for _, entry := range entries {
		if entry.Order == order {
			return apperr.Conflict("Order is already taken in this playlist")
		}
	}

	if err := service.repo.UpdateEntryOrder(context, playlistID, videoID, order); err != nil {
		return err
	}

	service.logger.Info("playlist_video_moved",
		slog.String("playlist_id", playlistID),
		slog.String("video_id", videoID),
		slog.Int("order", order),
	)
	return nil
}

// RemoveVideo takes a video out of a playlist.
func (service *Service) RemoveVideo(context context.Context, playlistID, videoID string) error {
	entries, err := service.ListEntries(context, playlistID)
	if err != nil {
		return err
	}

	found := false
	for _, entry := range entries {
		if entry.VideoID == videoID {
			found = true
			break
		}
	}
	if !found {
		return apperr.NotFound("Playlist entry")
	}

	if err := service.repo.DeleteEntry(context, playlistID, videoID); err != nil {
		return err
	}

	service.logger.Info("playlist_video_removed", slog.String("playlist_id", playlistID), slog.String("video_id", videoID))
	return nil
}
