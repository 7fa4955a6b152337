// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

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
	selectTags = fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.Tag.Columns(), ", "), schema.Tag.Table,
	)
	orderTags = fmt.Sprintf(` ORDER BY %s, %s`, schema.Tag.CreatedAt, schema.Tag.ID)
)

func (repository *PostgresRepository) ListTags(context context.Context) ([]*Tag, error) {
	rows, err := repository.db.Query(context, selectTags+orderTags)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	return collectTags(rows, "list_tags")
}

func (repository *PostgresRepository) GetTag(context context.Context, id string) (*Tag, error) {
	query := selectTags + fmt.Sprintf(` WHERE %s = $1`, schema.Tag.ID)
	return repository.getOne(context, query, id, "get_tag")
}

func (repository *PostgresRepository) GetTagByKey(context context.Context, key string) (*Tag, error) {
	// Stored names are already NFKC-clean; the unique index is on lower(name).
	query := selectTags + fmt.Sprintf(` WHERE lower(%s) = $1`, schema.Tag.Name)
	return repository.getOne(context, query, key, "get_tag_by_key")
}

func (repository *PostgresRepository) GetTags(context context.Context, ids []string) ([]*Tag, error) {
	if len(ids) == 0 {
		return []*Tag{}, nil
	}

	query := selectTags + fmt.Sprintf(` WHERE %s = ANY($1)`, schema.Tag.ID) + orderTags

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tags")
	}
	return collectTags(rows, "get_tags")
}

func (repository *PostgresRepository) CreateTag(context context.Context, t *Tag) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4)`,
		schema.Tag.Table, strings.Join(schema.Tag.Columns(), ", "),
	)

	_, err := repository.db.Exec(context, query, t.ID, t.Name, t.CreatedAt, t.UpdatedAt)
	return dberr.WrapFind(err, "Tag", "create_tag")
}

func (repository *PostgresRepository) UpdateTag(context context.Context, id string, patch Patch, updatedAt time.Time) error {
	builder := postgres.Update(schema.Tag.Table)
	postgres.SetIf(builder, schema.Tag.Name, patch.Name)
	query, args := builder.Set(schema.Tag.UpdatedAt, updatedAt).Where(schema.Tag.ID, id)

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.WrapFind(err, "Tag", "update_tag")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Tag")
	}
	return nil
}

func (repository *PostgresRepository) DeleteTag(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Tag.Table, schema.Tag.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tag")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Tag")
	}
	return nil
}

// # Video/Tag junction

func (repository *PostgresRepository) ListVideoTagsByVideos(context context.Context, videoIDs []string) ([]*VideoTag, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s, %s`,
		schema.VideoTag.VideoID, schema.VideoTag.TagID, schema.VideoTag.Table,
		schema.VideoTag.VideoID, schema.VideoTag.VideoID, schema.VideoTag.TagID,
	)
	return repository.listVideoTags(context, query, videoIDs, "list_video_tags_by_videos")
}

func (repository *PostgresRepository) ListVideoTagsByTags(context context.Context, tagIDs []string) ([]*VideoTag, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s, %s`,
		schema.VideoTag.VideoID, schema.VideoTag.TagID, schema.VideoTag.Table,
		schema.VideoTag.TagID, schema.VideoTag.TagID, schema.VideoTag.VideoID,
	)
	return repository.listVideoTags(context, query, tagIDs, "list_video_tags_by_tags")
}

func (repository *PostgresRepository) VideoTagExists(context context.Context, videoID, tagID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		schema.VideoTag.Table, schema.VideoTag.VideoID, schema.VideoTag.TagID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, videoID, tagID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "video_tag_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) InsertVideoTag(context context.Context, videoID, tagID string) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.VideoTag.Table, schema.VideoTag.VideoID, schema.VideoTag.TagID,
	)

	_, err := repository.db.Exec(context, query, videoID, tagID)
	return dberr.WrapFind(err, "Video tag", "insert_video_tag")
}

func (repository *PostgresRepository) DeleteVideoTag(context context.Context, videoID, tagID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.VideoTag.Table, schema.VideoTag.VideoID, schema.VideoTag.TagID,
	)

	cmd, err := repository.db.Exec(context, query, videoID, tagID)
	if err != nil {
		return dberr.Wrap(err, "delete_video_tag")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Video tag")
	}
	return nil
}

func (repository *PostgresRepository) getOne(context context.Context, query string, arg any, action string) (*Tag, error) {
	t := &Tag{}
	err := repository.db.QueryRow(context, query, arg).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, dberr.WrapFind(err, "Tag", action)
	}
	return t, nil
}

func (repository *PostgresRepository) listVideoTags(context context.Context, query string, ids []string, action string) ([]*VideoTag, error) {
	if len(ids) == 0 {
		return []*VideoTag{}, nil
	}

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	links := []*VideoTag{}
	for rows.Next() {
		link := &VideoTag{}
		if err := rows.Scan(&link.VideoID, &link.TagID); err != nil {
			return nil, dberr.Wrap(err, "scan_video_tag")
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return links, nil
}

func collectTags(rows pgx.Rows, action string) ([]*Tag, error) {
	defer rows.Close()

	tags := []*Tag{}
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return tags, nil
}
