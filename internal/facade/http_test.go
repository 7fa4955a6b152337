// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kirinukist/internal/facade"
	"github.com/taibuivan/kirinukist/internal/platform/middleware"
	"github.com/taibuivan/kirinukist/internal/platform/sec"
	"github.com/taibuivan/kirinukist/internal/testutil"
)

type apiFixture struct {
	t        *testing.T
	store    *testutil.Store
	services *testutil.Services
	verifier *sec.IdentityVerifier
	router   chi.Router
}

func newAPI(t *testing.T) *apiFixture {
	store := testutil.NewStore()
	services, facades := newFacades(store)

	verifier, err := sec.NewIdentityVerifier("test-secret", "")
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(verifier))
	router.Mount("/authors", facade.NewAuthorHandler(facades.Authors).Routes())
	router.Mount("/videos", facade.NewVideoHandler(facades.Videos).Routes())
	router.Mount("/tags", facade.NewTagHandler(facades.Tags).Routes())
	router.Mount("/playlists", facade.NewPlaylistHandler(facades.Playlists).Routes())

	return &apiFixture{t: t, store: store, services: services, verifier: verifier, router: router}
}

// do serves one request as callerID (anonymous when empty).
func (api *apiFixture) do(method, path, callerID, body string) *httptest.ResponseRecorder {
	api.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if callerID != "" {
		token, err := api.verifier.Sign(callerID, time.Hour)
		require.NoError(api.t, err)
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	api.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Code
}

func TestHTTP_CreateAndReadAuthor(t *testing.T) {
	api := newAPI(t)

	created := api.do(http.MethodPost, "/authors", "", `{"name":"Alice","iconUrl":"https://cdn.kirinukist.app/a.png"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	var id struct {
		ID string `json:"id"`
	}
	decodeData(t, created, &id)
	require.NotEmpty(t, id.ID)

	got := api.do(http.MethodGet, "/authors/"+id.ID+"?counts=true", "", "")
	require.Equal(t, http.StatusOK, got.Code)

	var body map[string]any
	decodeData(t, got, &body)
	assert.Equal(t, "Alice", body["name"])
	assert.EqualValues(t, 0, body["videoCount"])
	assert.EqualValues(t, 0, body["followerCount"])

	missing := api.do(http.MethodGet, "/authors/missing", "", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestHTTP_ViewSelection(t *testing.T) {
	api := newAPI(t)
	a1 := api.services.Author(t, "Alice")

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"basic", "", http.StatusOK},
		{"named view", "?view=with_videos_and_playlists", http.StatusOK},
		{"flags", "?videos=true&playlists=true&counts=true", http.StatusOK},
		{"unsupported flags", "?videos=true&counts=true", http.StatusBadRequest},
		{"unknown view", "?view=everything", http.StatusBadRequest},
		{"view the resource lacks", "?view=with_tags_and_author", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := api.do(http.MethodGet, "/authors/"+a1+tt.query, "", "")
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}

func TestHTTP_ProtectedRoutes(t *testing.T) {
	api := newAPI(t)
	a1 := api.services.Author(t, "Alice")
	a2 := api.services.Author(t, "Bob")

	anonymous := api.do(http.MethodPut, "/authors/"+a1+"/follow", "", "")
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	garbage := httptest.NewRequest(http.MethodGet, "/authors", nil)
	garbage.Header.Set("Authorization", "Bearer not-a-token")
	recorder := httptest.NewRecorder()
	api.router.ServeHTTP(recorder, garbage)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	forbidden := api.do(http.MethodPatch, "/authors/"+a1, a2, `{"name":"Mallory"}`)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, forbidden))
}

func TestHTTP_FollowFlow(t *testing.T) {
	api := newAPI(t)
	a1 := api.services.Author(t, "Alice")
	a2 := api.services.Author(t, "Bob")

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodPut, "/authors/"+a1+"/follow", a2, "").Code)
	assert.Equal(t, http.StatusConflict, api.do(http.MethodPut, "/authors/"+a1+"/follow", a2, "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPut, "/authors/"+a2+"/follow", a2, "").Code)

	followers := api.do(http.MethodGet, "/authors/"+a1+"/followers", "", "")
	require.Equal(t, http.StatusOK, followers.Code)
	var summaries []map[string]any
	decodeData(t, followers, &summaries)
	require.Len(t, summaries, 1)
	assert.Equal(t, a2, summaries[0]["id"])
	assert.NotContains(t, summaries[0], "counts")

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/authors/"+a1+"/follow", a2, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/authors/"+a1+"/follow", a2, "").Code)
}

func TestHTTP_VideoLifecycle(t *testing.T) {
	api := newAPI(t)
	owner := api.services.Author(t, "Alice")
	tagID := api.services.Tag(t, "karaoke")

	invalid := api.do(http.MethodPost, "/videos", owner, `{"title":"Opening","url":"https://youtu.be/x","start":30,"end":10}`)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)

	unknownField := api.do(http.MethodPost, "/videos", owner, `{"title":"Opening","colour":"red"}`)
	assert.Equal(t, http.StatusBadRequest, unknownField.Code)

	created := api.do(http.MethodPost, "/videos", owner, `{"title":"Opening","url":"https://youtu.be/x","start":0,"end":10}`)
	require.Equal(t, http.StatusCreated, created.Code)
	var id struct {
		ID string `json:"id"`
	}
	decodeData(t, created, &id)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodPut, "/videos/"+id.ID+"/tags/"+tagID, owner, "").Code)

	search := api.do(http.MethodGet, "/videos/search?tags="+tagID+"&match=all", "", "")
	require.Equal(t, http.StatusOK, search.Code)
	var ids []string
	decodeData(t, search, &ids)
	assert.Equal(t, []string{id.ID}, ids)

	expanded := api.do(http.MethodGet, "/videos/"+id.ID+"?expand=true", "", "")
	require.Equal(t, http.StatusOK, expanded.Code)
	var body struct {
		Author map[string]any   `json:"author"`
		Tags   []map[string]any `json:"tags"`
	}
	decodeData(t, expanded, &body)
	assert.Equal(t, "Alice", body.Author["name"])
	require.Len(t, body.Tags, 1)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/videos/"+id.ID, owner, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/videos/"+id.ID, "", "").Code)
}

func TestHTTP_PlaylistEntries(t *testing.T) {
	api := newAPI(t)
	owner := api.services.Author(t, "Alice")
	v1 := api.services.Video(t, owner, "first", 0, 10)
	v2 := api.services.Video(t, owner, "second", 0, 10)
	p1 := api.services.Playlist(t, owner, "mix")

	base := "/playlists/" + p1 + "/videos/"
	assert.Equal(t, http.StatusNoContent, api.do(http.MethodPut, base+v1, owner, "").Code)
	assert.Equal(t, http.StatusNoContent, api.do(http.MethodPut, base+v2, owner, `{"order":7}`).Code)
	assert.Equal(t, http.StatusConflict, api.do(http.MethodPut, base+v1, owner, "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPatch, base+v1, owner, `{}`).Code)
	assert.Equal(t, http.StatusNoContent, api.do(http.MethodPatch, base+v1, owner, `{"order":9}`).Code)

	got := api.do(http.MethodGet, "/playlists/"+p1+"?videos=true", "", "")
	require.Equal(t, http.StatusOK, got.Code)
	var body struct {
		Videos []struct {
			ID    string `json:"id"`
			Order int    `json:"order"`
		} `json:"videos"`
	}
	decodeData(t, got, &body)
	require.Len(t, body.Videos, 2)
	assert.Equal(t, v2, body.Videos[0].ID)
	assert.Equal(t, 7, body.Videos[0].Order)
	assert.Equal(t, v1, body.Videos[1].ID)
	assert.Equal(t, 9, body.Videos[1].Order)
}

func TestHTTP_Bookmarks(t *testing.T) {
	api := newAPI(t)
	owner := api.services.Author(t, "Alice")
	fan := api.services.Author(t, "Bob")
	v1 := api.services.Video(t, owner, "clip", 0, 10)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodPut, "/authors/me/bookmarks/videos/"+v1, fan, "").Code)
	assert.Equal(t, http.StatusConflict, api.do(http.MethodPut, "/authors/me/bookmarks/videos/"+v1, fan, "").Code)

	has := api.do(http.MethodGet, "/authors/"+fan+"/bookmarks/videos/"+v1, "", "")
	require.Equal(t, http.StatusOK, has.Code)

	listed := api.do(http.MethodGet, "/authors/"+fan+"/bookmarks/videos", "", "")
	require.Equal(t, http.StatusOK, listed.Code)
	var videos []map[string]any
	decodeData(t, listed, &videos)
	require.Len(t, videos, 1)
	assert.Equal(t, v1, videos[0]["id"])

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/authors/me/bookmarks/videos/"+v1, fan, "").Code)
}
