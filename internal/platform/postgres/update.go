// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"fmt"
	"strings"
)

// UpdateBuilder assembles a single-table UPDATE from the fields a patch provides.
//
// Columns are appended in call order and bound as $1..$n; the WHERE value is bound last.
type UpdateBuilder struct {
	table string
	sets  []string
	args  []any
}

// Update starts an UPDATE statement against table.
func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set assigns value to column.
func (builder *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	builder.args = append(builder.args, value)
	builder.sets = append(builder.sets, fmt.Sprintf("%s = $%d", column, len(builder.args)))
	return builder
}

// SetIf assigns *value to column when value is non-nil.
func SetIf[T any](builder *UpdateBuilder, column string, value *T) *UpdateBuilder {
	if value == nil {
		return builder
	}
	return builder.Set(column, *value)
}

// Where finishes the statement with an equality predicate on column.
func (builder *UpdateBuilder) Where(column string, value any) (string, []any) {
	args := append(builder.args, value)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		builder.table, strings.Join(builder.sets, ", "), column, len(args))
	return query, args
}
