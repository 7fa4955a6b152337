// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"context"
	"slices"

	"github.com/taibuivan/kirinukist/internal/core/bookmark"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

type bookmarkRepository struct {
	*Store
	kind bookmark.Kind
}

// Bookmarks returns the store's [bookmark.Repository] for kind. Each kind is a
// separate table.
func (s *Store) Bookmarks(kind bookmark.Kind) bookmark.Repository {
	return bookmarkRepository{Store: s, kind: kind}
}

// BookmarkRows returns how many stored bookmarks of kind match the pair.
func (s *Store) BookmarkRows(kind bookmark.Kind, authorID, targetID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, b := range s.bookmarks[kind] {
		if b.AuthorID == authorID && b.TargetID == targetID {
			count++
		}
	}
	return count
}

func (r bookmarkRepository) method(name string) string {
	return string(r.kind) + "_bookmark." + name
}

func (r bookmarkRepository) Exists(_ context.Context, authorID, targetID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(r.method("Exists")); err != nil {
		return false, err
	}
	return r.bookmarkIndex(authorID, targetID) >= 0, nil
}

func (r bookmarkRepository) Insert(_ context.Context, b *bookmark.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(r.method("Insert")); err != nil {
		return err
	}

	if r.bookmarkIndex(b.AuthorID, b.TargetID) >= 0 {
		return apperr.Conflict("Bookmark already exists")
	}
	c := *b
	r.bookmarks[r.kind] = append(r.bookmarks[r.kind], &c)
	return nil
}

func (r bookmarkRepository) Delete(_ context.Context, authorID, targetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(r.method("Delete")); err != nil {
		return err
	}

	i := r.bookmarkIndex(authorID, targetID)
	if i < 0 {
		return apperr.NotFound("Bookmark")
	}
	r.bookmarks[r.kind] = slices.Delete(r.bookmarks[r.kind], i, i+1)
	return nil
}

func (r bookmarkRepository) TargetIDs(_ context.Context, authorID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(r.method("TargetIDs")); err != nil {
		return nil, err
	}

	ids := []string{}
	for _, b := range r.bookmarks[r.kind] {
		if b.AuthorID == authorID {
			ids = append(ids, b.TargetID)
		}
	}
	return ids, nil
}

func (r bookmarkRepository) bookmarkIndex(authorID, targetID string) int {
	return slices.IndexFunc(r.bookmarks[r.kind], func(b *bookmark.Bookmark) bool {
		return b.AuthorID == authorID && b.TargetID == targetID
	})
}

// deleteBookmarksBy drops rows owned by authorID or pointing at targetID. An empty
// argument matches nothing.
func deleteBookmarksBy(rows []*bookmark.Bookmark, authorID, targetID string) []*bookmark.Bookmark {
	return slices.DeleteFunc(rows, func(b *bookmark.Bookmark) bool {
		return (authorID != "" && b.AuthorID == authorID) || (targetID != "" && b.TargetID == targetID)
	})
}
