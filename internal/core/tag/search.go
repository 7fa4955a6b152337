// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"

	"github.com/taibuivan/kirinukist/pkg/slice"
)

// Search answers set queries over the video/tag junction.
type Search struct {
	repo Repository
}

func NewSearch(repo Repository) *Search {
	return &Search{repo: repo}
}

// VideosByAnyTag returns the ids of videos carrying at least one of tagIDs, each once,
// in order of first appearance. No tags means no videos.
func (search *Search) VideosByAnyTag(context context.Context, tagIDs []string) ([]string, error) {
	if len(tagIDs) == 0 {
		return []string{}, nil
	}

	links, err := search.repo.ListVideoTagsByTags(context, slice.Unique(tagIDs))
	if err != nil {
		return nil, err
	}
	return slice.Unique(slice.Map(links, func(link *VideoTag) string { return link.VideoID })), nil
}

// VideosByAllTags returns the ids of videos carrying every one of tagIDs. The result
// keeps the order of the first tag's videos. No tags means no videos.
func (search *Search) VideosByAllTags(context context.Context, tagIDs []string) ([]string, error) {
	if len(tagIDs) == 0 {
		return []string{}, nil
	}

	var result []string
	for i, tagID := range slice.Unique(tagIDs) {
		links, err := search.repo.ListVideoTagsByTags(context, []string{tagID})
		if err != nil {
			return nil, err
		}
		videoIDs := slice.Map(links, func(link *VideoTag) string { return link.VideoID })

		if i == 0 {
			result = videoIDs
			continue
		}

		carrying := make(map[string]struct{}, len(videoIDs))
		for _, id := range videoIDs {
			carrying[id] = struct{}{}
		}
		result = slice.Filter(result, func(id string) bool {
			_, ok := carrying[id]
			return ok
		})

		if len(result) == 0 {
			break
		}
	}
	if len(result) == 0 {
		return []string{}, nil
	}
	return result, nil
}
