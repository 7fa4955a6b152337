// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

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
	selectVideos = fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.Video.Columns(), ", "), schema.Video.Table,
	)
	orderVideos = fmt.Sprintf(` ORDER BY %s, %s`, schema.Video.CreatedAt, schema.Video.ID)
)

func (repository *PostgresRepository) ListVideos(context context.Context) ([]*Video, error) {
	rows, err := repository.db.Query(context, selectVideos+orderVideos)
	if err != nil {
		return nil, dberr.Wrap(err, "list_videos")
	}
	return collectVideos(rows, "list_videos")
}

func (repository *PostgresRepository) ListVideosByAuthor(context context.Context, authorID string) ([]*Video, error) {
	query := selectVideos + fmt.Sprintf(` WHERE %s = $1`, schema.Video.AuthorID) + orderVideos

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_videos_by_author")
	}
	return collectVideos(rows, "list_videos_by_author")
}

func (repository *PostgresRepository) GetVideo(context context.Context, id string) (*Video, error) {
	query := selectVideos + fmt.Sprintf(` WHERE %s = $1`, schema.Video.ID)

	v := &Video{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&v.ID, &v.Title, &v.URL, &v.Start, &v.End, &v.AuthorID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.WrapFind(err, "Video", "get_video")
	}
	return v, nil
}

func (repository *PostgresRepository) GetVideos(context context.Context, ids []string) ([]*Video, error) {
	if len(ids) == 0 {
		return []*Video{}, nil
	}

	query := selectVideos + fmt.Sprintf(` WHERE %s = ANY($1)`, schema.Video.ID) + orderVideos

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "get_videos")
	}
	return collectVideos(rows, "get_videos")
}

func (repository *PostgresRepository) CountVideosByAuthor(context context.Context, authorID string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.Video.Table, schema.Video.AuthorID)

	var count int
	if err := repository.db.QueryRow(context, query, authorID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_videos_by_author")
	}
	return count, nil
}

func (repository *PostgresRepository) CreateVideo(context context.Context, v *Video) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		schema.Video.Table, strings.Join(schema.Video.Columns(), ", "),
	)

	_, err := repository.db.Exec(context, query,
		v.ID, v.Title, v.URL, v.Start, v.End, v.AuthorID, v.CreatedAt, v.UpdatedAt,
	)
	return dberr.WrapFind(err, "Video", "create_video")
}

func (repository *PostgresRepository) UpdateVideo(context context.Context, id string, patch Patch, updatedAt time.Time) error {
	builder := postgres.Update(schema.Video.Table)
	postgres.SetIf(builder, schema.Video.Title, patch.Title)
	postgres.SetIf(builder, schema.Video.URL, patch.URL)
	postgres.SetIf(builder, schema.Video.Start, patch.Start)
	postgres.SetIf(builder, schema.Video.End, patch.End)
	query, args := builder.Set(schema.Video.UpdatedAt, updatedAt).Where(schema.Video.ID, id)

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_video")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Video")
	}
	return nil
}

func (repository *PostgresRepository) DeleteVideo(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Video.Table, schema.Video.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_video")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Video")
	}
	return nil
}

func collectVideos(rows pgx.Rows, action string) ([]*Video, error) {
	defer rows.Close()

	videos := []*Video{}
	for rows.Next() {
		v := &Video{}
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.Start, &v.End, &v.AuthorID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_video")
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return videos, nil
}
