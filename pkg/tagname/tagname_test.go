// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tagname_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kirinukist/pkg/tagname"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii", "music", "music"},
		{"full_width", "ＶＴｕｂｅｒ", "VTuber"},
		{"whitespace", "  歌 　 枠  ", "歌 枠"},
		{"half_width_kana", "ｶﾗｵｹ", "カラオケ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tagname.Clean(tt.input))
		})
	}
}

func TestKey_CollidesAcrossWidthAndCase(t *testing.T) {
	assert.Equal(t, tagname.Key("VTuber"), tagname.Key("ｖｔｕｂｅｒ"))
	assert.Equal(t, "vtuber", tagname.Key(" VTUBER "))
	assert.NotEqual(t, tagname.Key("music"), tagname.Key("musics"))
}
