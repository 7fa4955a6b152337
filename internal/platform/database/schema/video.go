// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// VideoTable represents the 'videos' table
type VideoTable struct {
	Table     string
	ID        string
	Title     string
	URL       string
	Start     string
	End       string
	AuthorID  string
	CreatedAt string
	UpdatedAt string
}

// Video is the schema definition for videos
var Video = VideoTable{
	Table:     "videos",
	ID:        "id",
	Title:     "title",
	URL:       "url",
	Start:     `"start"`,
	End:       `"end"`,
	AuthorID:  `"authorId"`,
	CreatedAt: `"createdAt"`,
	UpdatedAt: `"updatedAt"`,
}

// Columns returns all standard column names
func (t VideoTable) Columns() []string {
	return []string{t.ID, t.Title, t.URL, t.Start, t.End, t.AuthorID, t.CreatedAt, t.UpdatedAt}
}
