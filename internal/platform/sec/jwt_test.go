// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kirinukist/internal/platform/sec"
)

func TestIdentityVerifier_RoundTrip(t *testing.T) {
	verifier, err := sec.NewIdentityVerifier("top-secret", "https://id.kirinukist.app")
	require.NoError(t, err)

	token, err := verifier.Sign("author-1", time.Minute)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "author-1", claims.AuthorID())
}

func TestIdentityVerifier_Rejects(t *testing.T) {
	verifier, err := sec.NewIdentityVerifier("top-secret", "https://id.kirinukist.app")
	require.NoError(t, err)

	other, err := sec.NewIdentityVerifier("other-secret", "https://id.kirinukist.app")
	require.NoError(t, err)
	foreignIssuer, err := sec.NewIdentityVerifier("top-secret", "https://evil.example")
	require.NoError(t, err)

	expired, err := verifier.Sign("author-1", -time.Minute)
	require.NoError(t, err)
	wrongKey, err := other.Sign("author-1", time.Minute)
	require.NoError(t, err)
	wrongIssuer, err := foreignIssuer.Sign("author-1", time.Minute)
	require.NoError(t, err)
	noSubject, err := verifier.Sign("", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"wrong_key", wrongKey},
		{"wrong_issuer", wrongIssuer},
		{"no_subject", noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestNewIdentityVerifier_EmptySecret(t *testing.T) {
	_, err := sec.NewIdentityVerifier("", "")
	assert.Error(t, err)
}
