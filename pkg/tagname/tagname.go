// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tagname normalizes user-entered tag names.
//
// Tags are typed by hand, often with a Japanese IME, so the same label arrives
// as full-width "ＶＴｕｂｅｒ", half-width "VTuber" or with stray spaces. Names
// are stored in their [Clean] form and compared through their [Key].
package tagname

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Clean applies NFKC compatibility normalization (full-width → half-width,
// composed kana) and folds every run of whitespace into a single space.
func Clean(name string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(name)), " ")
}

// Key returns the comparison key of a tag name: its [Clean] form, lower-cased.
// Two tags with the same key may not coexist.
func Key(name string) string {
	// A Caser is stateful, so one is built per call.
	return cases.Lower(language.Und).String(Clean(name))
}
