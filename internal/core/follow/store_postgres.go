// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package follow

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) Exists(context context.Context, followerID, followingID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		schema.Follow.Table, schema.Follow.FollowerID, schema.Follow.FollowingID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, followerID, followingID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "follow_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) Insert(context context.Context, followerID, followingID string) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, NOW())`,
		schema.Follow.Table, schema.Follow.FollowerID, schema.Follow.FollowingID, schema.Follow.CreatedAt,
	)

	_, err := repository.db.Exec(context, query, followerID, followingID)
	return dberr.WrapFind(err, "Follow", "insert_follow")
}

func (repository *PostgresRepository) Delete(context context.Context, followerID, followingID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Follow.Table, schema.Follow.FollowerID, schema.Follow.FollowingID,
	)

	cmd, err := repository.db.Exec(context, query, followerID, followingID)
	if err != nil {
		return dberr.Wrap(err, "delete_follow")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Follow")
	}
	return nil
}

func (repository *PostgresRepository) FollowerIDs(context context.Context, authorID string) ([]string, error) {
	return repository.listSide(context, schema.Follow.FollowerID, schema.Follow.FollowingID, authorID, "list_followers")
}

func (repository *PostgresRepository) FollowingIDs(context context.Context, authorID string) ([]string, error) {
	return repository.listSide(context, schema.Follow.FollowingID, schema.Follow.FollowerID, authorID, "list_following")
}

func (repository *PostgresRepository) CountFollowers(context context.Context, authorID string) (int, error) {
	return repository.count(context, schema.Follow.FollowingID, authorID, "count_followers")
}

func (repository *PostgresRepository) CountFollowing(context context.Context, authorID string) (int, error) {
	return repository.count(context, schema.Follow.FollowerID, authorID, "count_following")
}

// listSide selects the `side` column of every edge whose `match` column equals authorID.
func (repository *PostgresRepository) listSide(context context.Context, side, match, authorID, action string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s, %s`,
		side, schema.Follow.Table, match, schema.Follow.CreatedAt, side,
	)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_follow")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return ids, nil
}

func (repository *PostgresRepository) count(context context.Context, column, authorID, action string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.Follow.Table, column)

	var count int
	if err := repository.db.QueryRow(context, query, authorID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, action)
	}
	return count, nil
}
