// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import "time"

// Video is a clip: the [Start, End) second range of an externally hosted video.
type Video struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Start     int       `json:"start"`
	End       int       `json:"end"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Duration returns the clip length in seconds.
func (v *Video) Duration() int {
	return v.End - v.Start
}

type CreateInput struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	AuthorID string `json:"authorId"`
}

// Patch is a partial update. The owning author cannot be changed.
type Patch struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
	Start *int    `json:"start"`
	End   *int    `json:"end"`
}

// Apply merges the provided fields into v.
func (p Patch) Apply(v *Video) {
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.URL != nil {
		v.URL = *p.URL
	}
	if p.Start != nil {
		v.Start = *p.Start
	}
	if p.End != nil {
		v.End = *p.End
	}
}

const (
	FieldTitle    = "title"
	FieldURL      = "url"
	FieldStart    = "start"
	FieldEnd      = "end"
	FieldAuthorID = "authorId"
)
