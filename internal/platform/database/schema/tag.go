// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// TagTable represents the 'tags' table
type TagTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// Tag is the schema definition for tags
var Tag = TagTable{
	Table:     "tags",
	ID:        "id",
	Name:      "name",
	CreatedAt: `"createdAt"`,
	UpdatedAt: `"updatedAt"`,
}

// Columns returns all standard column names
func (t TagTable) Columns() []string {
	return []string{t.ID, t.Name, t.CreatedAt, t.UpdatedAt}
}
