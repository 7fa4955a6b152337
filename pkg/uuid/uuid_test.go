// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kirinukist/pkg/uuid"
)

func TestNew_UniqueAndValid(t *testing.T) {
	first, second := uuid.New(), uuid.New()

	assert.NotEqual(t, first, second)
	assert.True(t, uuid.Valid(first))
	assert.Less(t, first, second)
}

func TestValid(t *testing.T) {
	assert.False(t, uuid.Valid("a1"))
	assert.False(t, uuid.Valid(""))
}
