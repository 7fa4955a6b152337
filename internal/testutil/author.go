// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"context"
	"slices"
	"time"

	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

type authorRepository struct{ *Store }

// Authors returns the store's [author.Repository].
func (s *Store) Authors() author.Repository {
	return authorRepository{s}
}

func cloneAuthor(a *author.Author) *author.Author {
	c := *a
	if a.Bio != nil {
		bio := *a.Bio
		c.Bio = &bio
	}
	return &c
}

func (r authorRepository) ListAuthors(_ context.Context) ([]*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("author.ListAuthors"); err != nil {
		return nil, err
	}

	result := make([]*author.Author, 0, len(r.authors))
	for _, a := range r.authors {
		result = append(result, cloneAuthor(a))
	}
	return result, nil
}

func (r authorRepository) GetAuthor(_ context.Context, id string) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("author.GetAuthor"); err != nil {
		return nil, err
	}

	if i := r.authorIndex(id); i >= 0 {
		return cloneAuthor(r.authors[i]), nil
	}
	return nil, apperr.NotFound("Author")
}

func (r authorRepository) GetAuthors(_ context.Context, ids []string) ([]*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("author.GetAuthors"); err != nil {
		return nil, err
	}

	result := []*author.Author{}
	for _, a := range r.authors {
		if slices.Contains(ids, a.ID) {
			result = append(result, cloneAuthor(a))
		}
	}
	return result, nil
}

func (r authorRepository) CreateAuthor(_ context.Context, a *author.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("author.CreateAuthor"); err != nil {
		return err
	}

	if r.authorIndex(a.ID) >= 0 {
		return apperr.Conflict("Author already exists")
	}
	r.authors = append(r.authors, cloneAuthor(a))
	return nil
}

func (r authorRepository) UpdateAuthor(_ context.Context, id string, patch author.Patch, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("author.UpdateAuthor"); err != nil {
		return err
	}

	i := r.authorIndex(id)
	if i < 0 {
		return apperr.NotFound("Author")
	}
	patch.Apply(r.authors[i])
	r.authors[i].UpdatedAt = updatedAt
	return nil
}

func (r authorRepository) DeleteAuthor(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("author.DeleteAuthor"); err != nil {
		return err
	}

	i := r.authorIndex(id)
	if i < 0 {
		return apperr.NotFound("Author")
	}
	r.authors = slices.Delete(r.authors, i, i+1)

	// follows and bookmarks cascade with their author
	r.follows = slices.DeleteFunc(r.follows, func(f followRow) bool {
		return f.followerID == id || f.followingID == id
	})
	for kind, rows := range r.bookmarks {
		r.bookmarks[kind] = deleteBookmarksBy(rows, id, "")
	}
	return nil
}

func (s *Store) authorIndex(id string) int {
	return slices.IndexFunc(s.authors, func(a *author.Author) bool { return a.ID == id })
}
