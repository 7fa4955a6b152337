// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec verifies caller identity tokens.
//
// # Architecture
//
// Kirinukist does not authenticate anyone itself. An external identity provider
// issues HS256-signed JWTs whose "sub" claim is the caller's author id; this package
// only checks those tokens and exposes the claims to the transport layer through the
// [Verifier] interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the payload of an identity token.
type AuthClaims struct {
	jwt.RegisteredClaims
}

// AuthorID returns the caller's author id (the "sub" claim).
func (claims *AuthClaims) AuthorID() string {
	return claims.Subject
}

// Verifier checks an identity token and returns its claims.
type Verifier interface {
	Verify(token string) (*AuthClaims, error)
}

// IdentityVerifier verifies HS256 tokens signed with a shared secret.
type IdentityVerifier struct {
	secret []byte
	issuer string
}

// NewIdentityVerifier creates a verifier. An empty issuer accepts any "iss".
func NewIdentityVerifier(secret, issuer string) (*IdentityVerifier, error) {
	if secret == "" {
		return nil, errors.New("sec: identity secret must not be empty")
	}
	return &IdentityVerifier{secret: []byte(secret), issuer: issuer}, nil
}

// Verify checks the signature, expiry and issuer of token and requires a subject.
func (verifier *IdentityVerifier) Verify(token string) (*AuthClaims, error) {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if verifier.issuer != "" {
		options = append(options, jwt.WithIssuer(verifier.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &AuthClaims{}, func(*jwt.Token) (any, error) {
		return verifier.secret, nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(*AuthClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("sec: invalid token claims")
	}
	if claims.Subject == "" {
		return nil, errors.New("sec: token has no subject")
	}
	return claims, nil
}

// Sign issues a token for authorID valid for ttl. Production tokens come from the
// identity provider; this exists for local development and tests.
func (verifier *IdentityVerifier) Sign(authorID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   authorID,
			Issuer:    verifier.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(verifier.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}
	return signed, nil
}
