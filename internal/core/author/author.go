// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "time"

// Author is a user of the platform. Authors own videos and playlists, follow other
// authors and bookmark content.
type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IconURL   string    `json:"iconUrl"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateInput holds the caller-supplied fields of a new author.
type CreateInput struct {
	Name    string  `json:"name"`
	IconURL string  `json:"iconUrl"`
	Bio     *string `json:"bio"`
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name    *string `json:"name"`
	IconURL *string `json:"iconUrl"`
	Bio     *string `json:"bio"`
}

// Apply merges the provided fields into a.
func (p Patch) Apply(a *Author) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.IconURL != nil {
		a.IconURL = *p.IconURL
	}
	if p.Bio != nil {
		bio := *p.Bio
		a.Bio = &bio
	}
}

const (
	FieldName    = "name"
	FieldIconURL = "iconUrl"
	FieldBio     = "bio"
)
