// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import "context"

// Metadata is what the source video service reports about a URL.
type Metadata struct {
	Title       string `json:"title"`
	ChannelName string `json:"channelName"`
	ChannelURL  string `json:"channelUrl"`
}

// MetadataLookup resolves a source video URL against the external video service.
// Implementations live outside this repository.
type MetadataLookup interface {
	Lookup(context context.Context, url string) (*Metadata, error)
}
