// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"fmt"

	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

// View selects the shape a facade read returns. The set is closed: every facade
// documents which views it accepts and rejects the rest with a validation error.
type View int

const (
	ViewBasic View = iota
	ViewWithVideos
	ViewWithPlaylists
	ViewWithVideosAndPlaylists
	ViewWithCounts
	ViewWithVideosPlaylistsAndCounts
	ViewWithBookmarks
	ViewWithTagsAndAuthor
)

var viewNames = map[View]string{
	ViewBasic:                        "basic",
	ViewWithVideos:                   "with_videos",
	ViewWithPlaylists:                "with_playlists",
	ViewWithVideosAndPlaylists:       "with_videos_and_playlists",
	ViewWithCounts:                   "with_counts",
	ViewWithVideosPlaylistsAndCounts: "with_videos_playlists_and_counts",
	ViewWithBookmarks:                "with_bookmarks",
	ViewWithTagsAndAuthor:            "with_tags_and_author",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// ParseView resolves a view name such as "with_counts". The empty string is [ViewBasic].
func ParseView(name string) (View, error) {
	if name == "" {
		return ViewBasic, nil
	}
	for view, candidate := range viewNames {
		if candidate == name {
			return view, nil
		}
	}
	return ViewBasic, apperr.ValidationError(fmt.Sprintf("Unknown view %q", name),
		apperr.FieldError{Field: "view", Message: "Unknown view"},
	)
}

type flags struct {
	videos, playlists, counts, bookmarks bool
}

var flagViews = map[flags]View{
	{}:                                            ViewBasic,
	{videos: true}:                                ViewWithVideos,
	{playlists: true}:                             ViewWithPlaylists,
	{videos: true, playlists: true}:               ViewWithVideosAndPlaylists,
	{counts: true}:                                ViewWithCounts,
	{videos: true, playlists: true, counts: true}: ViewWithVideosPlaylistsAndCounts,
	{bookmarks: true}:                             ViewWithBookmarks,
}

// ViewFromFlags maps the legacy include flags onto a [View]. Combinations no view
// covers (e.g. videos with counts but without playlists) are rejected.
func ViewFromFlags(videos, playlists, counts, bookmarks bool) (View, error) {
	view, ok := flagViews[flags{videos: videos, playlists: playlists, counts: counts, bookmarks: bookmarks}]
	if !ok {
		return ViewBasic, apperr.ValidationError("Unsupported combination of include flags")
	}
	return view, nil
}

// unsupported rejects a view a facade method does not serve.
func unsupported(resource string, view View) error {
	return apperr.ValidationError(fmt.Sprintf("View %s is not supported for %s", view, resource),
		apperr.FieldError{Field: "view", Message: "Unsupported view"},
	)
}
