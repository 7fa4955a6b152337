// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// AuthorTable represents the 'authors' table
type AuthorTable struct {
	Table     string
	ID        string
	Name      string
	IconURL   string
	Bio       string
	CreatedAt string
	UpdatedAt string
}

// Author is the schema definition for authors
var Author = AuthorTable{
	Table:     "authors",
	ID:        "id",
	Name:      "name",
	IconURL:   `"iconUrl"`,
	Bio:       "bio",
	CreatedAt: `"createdAt"`,
	UpdatedAt: `"updatedAt"`,
}

// Columns returns all standard column names
func (t AuthorTable) Columns() []string {
	return []string{t.ID, t.Name, t.IconURL, t.Bio, t.CreatedAt, t.UpdatedAt}
}
