// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"time"
)

type Repository interface {
	ListAuthors(context context.Context) ([]*Author, error)
	GetAuthor(context context.Context, id string) (*Author, error)

	// GetAuthors returns the authors whose id is in ids. Unknown ids are skipped.
	GetAuthors(context context.Context, ids []string) ([]*Author, error)

	CreateAuthor(context context.Context, a *Author) error
	UpdateAuthor(context context.Context, id string, patch Patch, updatedAt time.Time) error
	DeleteAuthor(context context.Context, id string) error
}
