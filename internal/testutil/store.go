// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package testutil provides an in-memory stand-in for the Postgres repositories.

[Store] keeps every table in memory behind one RWMutex and hands out per-entity
repository views ([Store.Authors], [Store.Videos], ...). It mirrors the storage
contract the services rely on: insertion order for listings, unique keys reported
as conflicts, NotFound for zero-row updates and deletes, and cascading removal of
junction rows. Foreign keys are not enforced, so tests can seed dangling references.

Every repository call is counted under "<entity>.<Method>" (see [Store.Calls]) and can
be made to fail with [Store.FailOn].
*/
package testutil

import (
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/core/bookmark"
	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/core/video"
)

// Store is an in-memory database. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	authors   []*author.Author
	videos    []*video.Video
	playlists []*playlist.Playlist
	entries   []*playlist.Entry
	tags      []*tag.Tag
	videoTags []*tag.VideoTag
	follows   []followRow
	bookmarks map[bookmark.Kind][]*bookmark.Bookmark

	calls  map[string]int
	faults map[string]error
}

type followRow struct {
	followerID  string
	followingID string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		bookmarks: make(map[bookmark.Kind][]*bookmark.Bookmark),
		calls:     make(map[string]int),
		faults:    make(map[string]error),
	}
}

// Calls returns how many times method (e.g. "video.CountVideosByAuthor") was invoked.
func (s *Store) Calls(method string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[method]
}

// ResetCalls zeroes every call counter.
func (s *Store) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = make(map[string]int)
}

// FailOn makes every later call of method return err. A nil err clears the fault.
func (s *Store) FailOn(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.faults, method)
		return
	}
	s.faults[method] = err
}

// record counts a call and returns the injected fault, if any. Callers hold s.mu.
func (s *Store) record(method string) error {
	s.calls[method]++
	return s.faults[method]
}

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
