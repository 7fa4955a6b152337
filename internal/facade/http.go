// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"net/http"

	requestutil "github.com/taibuivan/kirinukist/internal/platform/request"
	"github.com/taibuivan/kirinukist/internal/platform/respond"
	"github.com/taibuivan/kirinukist/pkg/query"
)

// createdResponse is the body of every 201 response.
type createdResponse struct {
	ID string `json:"id"`
}

// viewFromRequest resolves the requested [View]. An explicit ?view= wins; otherwise the
// include flags (?videos, ?playlists, ?counts, ?bookmarks) are mapped through [ViewFromFlags].
func viewFromRequest(request *http.Request) (View, error) {
	if name := request.URL.Query().Get("view"); name != "" {
		return ParseView(name)
	}
	return ViewFromFlags(
		requestutil.Flag(request, "videos"),
		requestutil.Flag(request, "playlists"),
		requestutil.Flag(request, "counts"),
		requestutil.Flag(request, "bookmarks"),
	)
}

// listParam reads a comma-separated query parameter, also accepting repeated keys.
func listParam(request *http.Request, name string) []string {
	var values []string
	for _, raw := range request.URL.Query()[name] {
		values = append(values, query.StringSlice(raw)...)
	}
	return values
}

// callerAction runs a body-less mutation on behalf of the caller and answers 204.
func callerAction(writer http.ResponseWriter, request *http.Request, action func(callerID string) error) {
	callerID, err := requestutil.RequiredCallerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := action(callerID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
