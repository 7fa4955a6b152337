// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookmark

import (
	"context"
	"fmt"

	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/database/schema"
	"github.com/taibuivan/kirinukist/internal/platform/dberr"
	"github.com/taibuivan/kirinukist/internal/platform/postgres"
)

// PostgresRepository stores bookmarks in the table described by its [schema.BookmarkTable].
type PostgresRepository struct {
	db    postgres.Querier
	table schema.BookmarkTable
}

func NewPostgresRepository(db postgres.Querier, table schema.BookmarkTable) *PostgresRepository {
	return &PostgresRepository{db: db, table: table}
}

// NewVideoRepository stores bookmarks in video_bookmarks.
func NewVideoRepository(db postgres.Querier) *PostgresRepository {
	return NewPostgresRepository(db, schema.VideoBookmark)
}

// NewPlaylistRepository stores bookmarks in playlist_bookmarks.
func NewPlaylistRepository(db postgres.Querier) *PostgresRepository {
	return NewPostgresRepository(db, schema.PlaylistBookmark)
}

func (repository *PostgresRepository) Exists(context context.Context, authorID, targetID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		repository.table.Table, repository.table.AuthorID, repository.table.TargetID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, authorID, targetID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "bookmark_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) Insert(context context.Context, b *Bookmark) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		repository.table.Table, repository.table.AuthorID, repository.table.TargetID, repository.table.CreatedAt,
	)

	_, err := repository.db.Exec(context, query, b.AuthorID, b.TargetID, b.CreatedAt)
	return dberr.WrapFind(err, "Bookmark", "insert_bookmark")
}

func (repository *PostgresRepository) Delete(context context.Context, authorID, targetID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		repository.table.Table, repository.table.AuthorID, repository.table.TargetID,
	)

	cmd, err := repository.db.Exec(context, query, authorID, targetID)
	if err != nil {
		return dberr.Wrap(err, "delete_bookmark")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Bookmark")
	}
	return nil
}

func (repository *PostgresRepository) TargetIDs(context context.Context, authorID string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s, %s`,
		repository.table.TargetID, repository.table.Table, repository.table.AuthorID,
		repository.table.CreatedAt, repository.table.TargetID,
	)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_bookmarks")
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_bookmark")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_bookmarks")
	}
	return ids, nil
}
