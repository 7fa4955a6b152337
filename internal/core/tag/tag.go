// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "time"

// Tag is a discovery label attached to videos.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VideoTag is a row of the video/tag junction.
type VideoTag struct {
	VideoID string `json:"videoId"`
	TagID   string `json:"tagId"`
}

type CreateInput struct {
	Name string `json:"name"`
}

type Patch struct {
	Name *string `json:"name"`
}

// Apply merges the provided fields into t.
func (p Patch) Apply(t *Tag) {
	if p.Name != nil {
		t.Name = *p.Name
	}
}

const FieldName = "name"
