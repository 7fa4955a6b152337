// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

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

var selectAuthors = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.Author.Columns(), ", "), schema.Author.Table,
)

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := selectAuthors + fmt.Sprintf(` ORDER BY %s, %s`, schema.Author.CreatedAt, schema.Author.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	return collectAuthors(rows, "list_authors")
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id string) (*Author, error) {
	query := selectAuthors + fmt.Sprintf(` WHERE %s = $1`, schema.Author.ID)

	a := &Author{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Name, &a.IconURL, &a.Bio, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.WrapFind(err, "Author", "get_author")
	}
	return a, nil
}

func (repository *PostgresRepository) GetAuthors(context context.Context, ids []string) ([]*Author, error) {
	if len(ids) == 0 {
		return []*Author{}, nil
	}

	query := selectAuthors + fmt.Sprintf(` WHERE %s = ANY($1)`, schema.Author.ID)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "get_authors")
	}
	return collectAuthors(rows, "get_authors")
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.Author.Table, strings.Join(schema.Author.Columns(), ", "),
	)

	_, err := repository.db.Exec(context, query, a.ID, a.Name, a.IconURL, a.Bio, a.CreatedAt, a.UpdatedAt)
	return dberr.WrapFind(err, "Author", "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, id string, patch Patch, updatedAt time.Time) error {
	builder := postgres.Update(schema.Author.Table)
	postgres.SetIf(builder, schema.Author.Name, patch.Name)
	postgres.SetIf(builder, schema.Author.IconURL, patch.IconURL)
	postgres.SetIf(builder, schema.Author.Bio, patch.Bio)
	query, args := builder.Set(schema.Author.UpdatedAt, updatedAt).Where(schema.Author.ID, id)

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_author")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Author")
	}
	return nil
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Author.Table, schema.Author.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Author")
	}
	return nil
}

func collectAuthors(rows pgx.Rows, action string) ([]*Author, error) {
	defer rows.Close()

	authors := []*Author{}
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.IconURL, &a.Bio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return authors, nil
}
