// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/platform/apperr"
	"github.com/taibuivan/kirinukist/internal/platform/middleware"
	requestutil "github.com/taibuivan/kirinukist/internal/platform/request"
	"github.com/taibuivan/kirinukist/internal/platform/respond"
)

// PlaylistHandler implements the HTTP layer for the [Playlists] facade.
type PlaylistHandler struct {
	facade *Playlists
}

// NewPlaylistHandler constructs a new [PlaylistHandler].
func NewPlaylistHandler(facade *Playlists) *PlaylistHandler {
	return &PlaylistHandler{facade: facade}
}

// entryRequest is the body of the playlist entry endpoints. A nil order appends.
type entryRequest struct {
	Order *int `json:"order"`
}

// Routes returns a [chi.Router] configured with playlist endpoints.
func (handler *PlaylistHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/", handler.create)
		protected.Patch("/{id}", handler.update)
		protected.Delete("/{id}", handler.delete)
		protected.Put("/{id}/videos/{videoID}", handler.addVideo)
		protected.Patch("/{id}/videos/{videoID}", handler.moveVideo)
		protected.Delete("/{id}/videos/{videoID}", handler.removeVideo)
	})

	return router
}

// GET /api/v1/playlists?videos=true
func (handler *PlaylistHandler) list(writer http.ResponseWriter, request *http.Request) {
	view, err := viewFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlists, err := handler.facade.List(request.Context(), view)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, playlists)
}

// GET /api/v1/playlists/{id}?videos=true
func (handler *PlaylistHandler) get(writer http.ResponseWriter, request *http.Request) {
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

func (handler *PlaylistHandler) create(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredCallerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input playlist.CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.facade.Create(request.Context(), callerID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, createdResponse{ID: id})
}

func (handler *PlaylistHandler) update(writer http.ResponseWriter, request *http.Request) {
	var patch playlist.Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	callerAction(writer, request, func(callerID string) error {
		return handler.facade.Update(request.Context(), callerID, requestutil.ID(request, "id"), patch)
	})
}

func (handler *PlaylistHandler) delete(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.Delete(request.Context(), callerID, requestutil.ID(request, "id"))
	})
}

/*
PUT /api/v1/playlists/{id}/videos/{videoID}.

Request (Body, optional):
  - order: int (omitted appends after the last entry)

Response:
  - 204: added
  - 409: the video is already in the playlist, or the order is taken
*/
func (handler *PlaylistHandler) addVideo(writer http.ResponseWriter, request *http.Request) {
	var body entryRequest
	if request.ContentLength != 0 {
		if err := requestutil.DecodeJSON(request, &body); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	callerAction(writer, request, func(callerID string) error {
		return handler.facade.AddVideo(request.Context(), callerID, requestutil.ID(request, "id"), requestutil.ID(request, "videoID"), body.Order)
	})
}

// PATCH /api/v1/playlists/{id}/videos/{videoID} with {"order": n}
func (handler *PlaylistHandler) moveVideo(writer http.ResponseWriter, request *http.Request) {
	var body entryRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if body.Order == nil {
		respond.Error(writer, request, apperr.ValidationError("order is required",
			apperr.FieldError{Field: "order", Message: "Required"},
		))
		return
	}

	callerAction(writer, request, func(callerID string) error {
		return handler.facade.MoveVideo(request.Context(), callerID, requestutil.ID(request, "id"), requestutil.ID(request, "videoID"), *body.Order)
	})
}

func (handler *PlaylistHandler) removeVideo(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.RemoveVideo(request.Context(), callerID, requestutil.ID(request, "id"), requestutil.ID(request, "videoID"))
	})
}
