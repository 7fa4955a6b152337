// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/platform/middleware"
	requestutil "github.com/taibuivan/kirinukist/internal/platform/request"
	"github.com/taibuivan/kirinukist/internal/platform/respond"
)

// AuthorHandler implements the HTTP layer for the [Authors] facade.
type AuthorHandler struct {
	facade *Authors
}

// NewAuthorHandler constructs a new [AuthorHandler].
func NewAuthorHandler(facade *Authors) *AuthorHandler {
	return &AuthorHandler{facade: facade}
}

// Routes returns a [chi.Router] configured with author endpoints.
func (handler *AuthorHandler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public
	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/followers", handler.followers)
	router.Get("/{id}/following", handler.following)
	router.Get("/{id}/following/{targetID}", handler.isFollowing)
	router.Get("/{id}/bookmarks/videos", handler.bookmarkedVideos)
	router.Get("/{id}/bookmarks/videos/{videoID}", handler.hasBookmarkedVideo)
	router.Get("/{id}/bookmarks/playlists", handler.bookmarkedPlaylists)
	router.Get("/{id}/bookmarks/playlists/{playlistID}", handler.hasBookmarkedPlaylist)

	// ## Caller-scoped
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Patch("/{id}", handler.update)
		protected.Delete("/{id}", handler.delete)
		protected.Put("/{id}/follow", handler.follow)
		protected.Delete("/{id}/follow", handler.unfollow)
		protected.Put("/me/bookmarks/videos/{videoID}", handler.bookmarkVideo)
		protected.Delete("/me/bookmarks/videos/{videoID}", handler.unbookmarkVideo)
		protected.Put("/me/bookmarks/playlists/{playlistID}", handler.bookmarkPlaylist)
		protected.Delete("/me/bookmarks/playlists/{playlistID}", handler.unbookmarkPlaylist)
	})

	return router
}

// # Reads

/*
GET /api/v1/authors.

Request:
  - view: basic | with_counts (or ?counts=true)
*/
func (handler *AuthorHandler) list(writer http.ResponseWriter, request *http.Request) {
	view, err := viewFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	authors, err := handler.facade.List(request.Context(), view)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authors)
}

/*
GET /api/v1/authors/{id}.

Request:
  - view: any author view, or the include flags videos/playlists/counts/bookmarks

Response:
  - 200: the author in the requested shape
  - 400: unknown view or unsupported flag combination
  - 404: author not found
*/
func (handler *AuthorHandler) get(writer http.ResponseWriter, request *http.Request) {
	view, err := viewFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.facade.Get(request.Context(), requestutil.ID(request, "id"), view)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

// GET /api/v1/authors/{id}/followers?counts=true
func (handler *AuthorHandler) followers(writer http.ResponseWriter, request *http.Request) {
	summaries, err := handler.facade.Followers(request.Context(), requestutil.ID(request, "id"), requestutil.Flag(request, "counts"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summaries)
}

// GET /api/v1/authors/{id}/following?counts=true
func (handler *AuthorHandler) following(writer http.ResponseWriter, request *http.Request) {
	summaries, err := handler.facade.Following(request.Context(), requestutil.ID(request, "id"), requestutil.Flag(request, "counts"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summaries)
}

func (handler *AuthorHandler) isFollowing(writer http.ResponseWriter, request *http.Request) {
	following, err := handler.facade.IsFollowing(request.Context(), requestutil.ID(request, "id"), requestutil.ID(request, "targetID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"following": following})
}

func (handler *AuthorHandler) bookmarkedVideos(writer http.ResponseWriter, request *http.Request) {
	videos, err := handler.facade.BookmarkedVideos(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, videos)
}

func (handler *AuthorHandler) bookmarkedPlaylists(writer http.ResponseWriter, request *http.Request) {
	playlists, err := handler.facade.BookmarkedPlaylists(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, playlists)
}

func (handler *AuthorHandler) hasBookmarkedVideo(writer http.ResponseWriter, request *http.Request) {
	bookmarked, err := handler.facade.HasBookmarkedVideo(request.Context(), requestutil.ID(request, "id"), requestutil.ID(request, "videoID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"bookmarked": bookmarked})
}

func (handler *AuthorHandler) hasBookmarkedPlaylist(writer http.ResponseWriter, request *http.Request) {
	bookmarked, err := handler.facade.HasBookmarkedPlaylist(request.Context(), requestutil.ID(request, "id"), requestutil.ID(request, "playlistID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"bookmarked": bookmarked})
}

// # Writes

/*
POST /api/v1/authors.

Request (Body):
  - name, iconUrl, bio

Response:
  - 201: {"id": ...}
  - 400: invalid JSON or validation failure
*/
func (handler *AuthorHandler) create(writer http.ResponseWriter, request *http.Request) {
	var input author.CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.facade.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, createdResponse{ID: id})
}

// PATCH /api/v1/authors/{id}. Only the author themselves may update the profile.
func (handler *AuthorHandler) update(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredCallerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch author.Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.facade.Update(request.Context(), callerID, requestutil.ID(request, "id"), patch); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
DELETE /api/v1/authors/{id}.

Response:
  - 204: deleted
  - 403: not the caller's profile
  - 409: the author still owns videos or playlists
*/
func (handler *AuthorHandler) delete(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.Delete(request.Context(), callerID, requestutil.ID(request, "id"))
	})
}

// PUT /api/v1/authors/{id}/follow: the caller follows {id}.
func (handler *AuthorHandler) follow(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.Follow(request.Context(), callerID, requestutil.ID(request, "id"))
	})
}

func (handler *AuthorHandler) unfollow(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.Unfollow(request.Context(), callerID, requestutil.ID(request, "id"))
	})
}

func (handler *AuthorHandler) bookmarkVideo(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.BookmarkVideo(request.Context(), callerID, requestutil.ID(request, "videoID"))
	})
}

func (handler *AuthorHandler) unbookmarkVideo(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.UnbookmarkVideo(request.Context(), callerID, requestutil.ID(request, "videoID"))
	})
}

func (handler *AuthorHandler) bookmarkPlaylist(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.BookmarkPlaylist(request.Context(), callerID, requestutil.ID(request, "playlistID"))
	})
}

func (handler *AuthorHandler) unbookmarkPlaylist(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.UnbookmarkPlaylist(request.Context(), callerID, requestutil.ID(request, "playlistID"))
	})
}
