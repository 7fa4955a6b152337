// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column names of the Kirinukist database.
//
// Column names are camelCase and therefore quoted; repositories interpolate these
// values into SQL instead of repeating string literals.
package schema
