// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kirinukist/internal/platform/postgres"
)

func TestUpdateBuilder(t *testing.T) {
	name := "Alice"
	var bio *string

	builder := postgres.Update("authors")
	postgres.SetIf(builder, "name", &name)
	postgres.SetIf(builder, "bio", bio)
	builder.Set(`"updatedAt"`, "now")

	query, args := builder.Where("id", "a1")

	assert.Equal(t, `UPDATE authors SET name = $1, "updatedAt" = $2 WHERE id = $3`, query)
	assert.Equal(t, []any{"Alice", "now", "a1"}, args)
}
