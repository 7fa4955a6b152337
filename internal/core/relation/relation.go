// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package relation attaches related entities to a root entity.

Relations are assembled here, not in SQL: every expander reads through the entity
base services and matches rows in memory, so a failure can be attributed to the
sub-fetch that caused it.

# Failure semantics

  - The root entity missing is a NotFound error, returned unchanged.
  - Any other failure is a Database error whose cause names each composition step,
    e.g. "expand_author_videos: expand_videos: load_authors: connection reset".
  - A reference that points at a missing row (a video whose author is gone) is a
    Database error too: the graph is inconsistent, the caller did nothing wrong.

# Batching

A list of videos is expanded with one author lookup and one tag-junction lookup
for the whole list. The output is the same as expanding every video on its own.

# Consistency

Sub-fetches run against the shared pool without a transaction. A read racing a
write may observe a mix of before and after states.
*/
package relation

import (
	"fmt"
	"log/slog"

	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/core/bookmark"
	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/core/video"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

// Base holds the entity base services expansions read through.
type Base struct {
	Authors           *author.Service
	Videos            *video.Service
	Playlists         *playlist.Service
	Tags              *tag.Service
	VideoBookmarks    *bookmark.Service
	PlaylistBookmarks *bookmark.Service
	Logger            *slog.Logger
}

// dangling reports a row of from that references a missing to row.
func dangling(logger *slog.Logger, step, from, to, toID string) error {
	logger.Error("dangling_reference",
		slog.String("step", step),
		slog.String("from", from),
		slog.String("to", to),
		slog.String("to_id", toID),
	)
	return apperr.Database(step, fmt.Errorf("%s references missing %s %s: %w", from, to, toID, apperr.NotFound(to)))
}
