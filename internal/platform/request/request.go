// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/ctxutil"
	"github.com/taibuivan/kirinukist/internal/platform/validate"
	"github.com/taibuivan/kirinukist/pkg/convert"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns validate.ErrInvalidJSON if decoding fails.
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// ID retrieves a named URL parameter from the request.
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Flag reports whether the boolean query parameter name is set to a true value.
// Absent or unparsable values are false.
func Flag(request *http.Request, name string) bool {
	return convert.ToBool(request.URL.Query().Get(name))
}

// CallerID returns the authenticated author id, or "" for anonymous requests.
func CallerID(request *http.Request) string {
	claims := ctxutil.GetCaller(request.Context())
	if claims == nil {
		return ""
	}
	return claims.AuthorID()
}

/*
RequiredCallerID returns the author id of the authenticated caller.

Returns apperr.Unauthorized if the request carries no verified identity.
*/
func RequiredCallerID(request *http.Request) (string, error) {
	id := CallerID(request)
	if id == "" {
		return "", apperr.Unauthorized("Authentication required")
	}
	return id, nil
}
