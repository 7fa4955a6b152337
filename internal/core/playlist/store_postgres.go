// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/database/schema"
	"github.com/taibuivan/kirinukist/internal/platform/dberr"
	"github.com/taibuivan/kirinukist/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	selectPlaylists = fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.Playlist.Columns(), ", "), schema.Playlist.Table,
	)
	orderPlaylists = fmt.Sprintf(` ORDER BY %s, %s`, schema.Playlist.CreatedAt, schema.Playlist.ID)
)

func (repository *PostgresRepository) ListPlaylists(context context.Context) ([]*Playlist, error) {
	rows, err := repository.db.Query(context, selectPlaylists+orderPlaylists)
	if err != nil {
		return nil, dberr.Wrap(err, "list_playlists")
	}
	return collectPlaylists(rows, "list_playlists")
}

func (repository *PostgresRepository) ListPlaylistsByAuthor(context context.Context, authorID string) ([]*Playlist, error) {
	query := selectPlaylists + fmt.Sprintf(` WHERE %s = $1`, schema.Playlist.AuthorID) + orderPlaylists

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_playlists_by_author")
	}
	return collectPlaylists(rows, "list_playlists_by_author")
}

func (repository *PostgresRepository) GetPlaylist(context context.Context, id string) (*Playlist, error) {
	query := selectPlaylists + fmt.Sprintf(` WHERE %s = $1`, schema.Playlist.ID)

	p := &Playlist{}
	err := repository.db.QueryRow(context, query, id).Scan(&p.ID, &p.Title, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, dberr.WrapFind(err, "Playlist", "get_playlist")
	}
	return p, nil
}

func (repository *PostgresRepository) GetPlaylists(context context.Context, ids []string) ([]*Playlist, error) {
	if len(ids) == 0 {
		return []*Playlist{}, nil
	}

	query := selectPlaylists + fmt.Sprintf(` WHERE %s = ANY($1)`, schema.Playlist.ID) + orderPlaylists

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "get_playlists")
	}
	return collectPlaylists(rows, "get_playlists")
}

func (repository *PostgresRepository) CountPlaylistsByAuthor(context context.Context, authorID string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.Playlist.Table, schema.Playlist.AuthorID)

	var count int
	if err := repository.db.QueryRow(context, query, authorID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_playlists_by_author")
	}
	return count, nil
}

func (repository *PostgresRepository) CreatePlaylist(context context.Context, p *Playlist) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)`,
		schema.Playlist.Table, strings.Join(schema.Playlist.Columns(), ", "),
	)

	_, err := repository.db.Exec(context, query, p.ID, p.Title, p.AuthorID, p.CreatedAt, p.UpdatedAt)
	return dberr.WrapFind(err, "Playlist", "create_playlist")
}

func (repository *PostgresRepository) UpdatePlaylist(context context.Context, id string, patch Patch, updatedAt time.Time) error {
	builder := postgres.Update(schema.Playlist.Table)
	postgres.SetIf(builder, schema.Playlist.Title, patch.Title)
	query, args := builder.Set(schema.Playlist.UpdatedAt, updatedAt).Where(schema.Playlist.ID, id)

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_playlist")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Playlist")
	}
	return nil
}

func (repository *PostgresRepository) DeletePlaylist(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Playlist.Table, schema.Playlist.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_playlist")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Playlist")
	}
	return nil
}

// # Entries

func (repository *PostgresRepository) ListEntries(context context.Context, playlistIDs []string) ([]*Entry, error) {
	if len(playlistIDs) == 0 {
		return []*Entry{}, nil
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s, %s`,
		schema.PlaylistVideo.PlaylistID, schema.PlaylistVideo.VideoID, schema.PlaylistVideo.Order,
		schema.PlaylistVideo.Table, schema.PlaylistVideo.PlaylistID,
		schema.PlaylistVideo.PlaylistID, schema.PlaylistVideo.Order,
	)

	rows, err := repository.db.Query(context, query, playlistIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_playlist_entries")
	}
	defer rows.Close()

	entries := []*Entry{}
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.PlaylistID, &e.VideoID, &e.Order); err != nil {
			return nil, dberr.Wrap(err, "scan_playlist_entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_playlist_entries")
	}
	return entries, nil
}

func (repository *PostgresRepository) InsertEntry(context context.Context, entry *Entry) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.PlaylistVideo.Table,
		schema.PlaylistVideo.PlaylistID, schema.PlaylistVideo.VideoID, schema.PlaylistVideo.Order,
	)

	_, err := repository.db.Exec(context, query, entry.PlaylistID, entry.VideoID, entry.Order)
	return dberr.WrapFind(err, "Playlist entry", "insert_playlist_entry")
}

func (repository *PostgresRepository) UpdateEntryOrder(context context.Context, playlistID, videoID string, order int) error {
	query, args := postgres.Update(schema.PlaylistVideo.Table).
		Set(schema.PlaylistVideo.Order, order).
		Where(schema.PlaylistVideo.PlaylistID, playlistID)
	query += fmt.Sprintf(` AND %s = $%d`, schema.PlaylistVideo.VideoID, len(args)+1)
	args = append(args, videoID)

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.WrapFind(err, "Playlist entry", "move_playlist_entry")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Playlist entry")
	}
	return nil
}

func (repository *PostgresRepository) DeleteEntry(context context.Context, playlistID, videoID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.PlaylistVideo.Table, schema.PlaylistVideo.PlaylistID, schema.PlaylistVideo.VideoID,
	)

	cmd, err := repository.db.Exec(context, query, playlistID, videoID)
	if err != nil {
		return dberr.Wrap(err, "delete_playlist_entry")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Playlist entry")
	}
	return nil
}

func collectPlaylists(rows pgx.Rows, action string) ([]*Playlist, error) {
	defer rows.Close()

	playlists := []*Playlist{}
	for rows.Next() {
		p := &Playlist{}
		if err := rows.Scan(&p.ID, &p.Title, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_playlist")
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return playlists, nil
}
