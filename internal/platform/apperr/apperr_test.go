// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kirinukist/internal/platform/apperr"
)

/*
TestKinds verifies that every constructor is recognised by exactly one predicate.
*/
func TestKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		is     func(error) bool
	}{
		{"not_found", apperr.NotFound("Video"), http.StatusNotFound, apperr.IsNotFound},
		{"conflict", apperr.Conflict("Already following"), http.StatusConflict, apperr.IsConflict},
		{"validation", apperr.ValidationError("bad"), http.StatusBadRequest, apperr.IsValidation},
		{"database", apperr.Database("list_videos", errors.New("boom")), http.StatusInternalServerError, apperr.IsDatabase},
	}

	predicates := []func(error) bool{apperr.IsNotFound, apperr.IsConflict, apperr.IsValidation, apperr.IsDatabase}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.As(tt.err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.status, ae.HTTPStatus)

			matches := 0
			for _, is := range predicates {
				if is(tt.err) {
					matches++
				}
			}
			assert.Equal(t, 1, matches)
			assert.True(t, tt.is(tt.err))
		})
	}
}

/*
TestStep_PassesNotFound ensures NotFound is never rewritten by composition steps.
*/
func TestStep_PassesNotFound(t *testing.T) {
	notFound := apperr.NotFound("Author")

	err := apperr.Step("load_author", notFound)

	assert.Same(t, notFound, err)
	assert.Nil(t, apperr.Step("load_author", nil))
}

/*
TestStep_ChainsDatabaseSteps verifies the cause chain names every composition step.
*/
func TestStep_ChainsDatabaseSteps(t *testing.T) {
	root := errors.New("connection reset")

	err := apperr.Step("expand_author_videos", apperr.Step("load_authors", root))

	require.True(t, apperr.IsDatabase(err))
	assert.ErrorIs(t, err, root)
	assert.Equal(t, "expand_author_videos: load_authors: connection reset", apperr.As(err).Cause.Error())
}

/*
TestStep_WrapsConflict verifies non-NotFound kinds become database errors at a step.
*/
func TestStep_WrapsConflict(t *testing.T) {
	err := apperr.Step("load_tags", apperr.Conflict("dup"))

	assert.True(t, apperr.IsDatabase(err))
	assert.False(t, apperr.IsConflict(err))
}
