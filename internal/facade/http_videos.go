// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kirinukist/internal/core/video"
	"github.com/taibuivan/kirinukist/internal/platform/middleware"
	requestutil "github.com/taibuivan/kirinukist/internal/platform/request"
	"github.com/taibuivan/kirinukist/internal/platform/respond"
)

// VideoHandler implements the HTTP layer for the [Videos] facade.
type VideoHandler struct {
	facade *Videos
}

// NewVideoHandler constructs a new [VideoHandler].
func NewVideoHandler(facade *Videos) *VideoHandler {
	return &VideoHandler{facade: facade}
}

// Routes returns a [chi.Router] configured with video endpoints.
func (handler *VideoHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/search", handler.search)
	router.Get("/{id}", handler.get)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/", handler.create)
		protected.Patch("/{id}", handler.update)
		protected.Delete("/{id}", handler.delete)
		protected.Put("/{id}/tags/{tagID}", handler.attachTag)
		protected.Delete("/{id}/tags/{tagID}", handler.detachTag)
	})

	return router
}

// videoView maps ?expand=true onto [ViewWithTagsAndAuthor]; otherwise ?view= applies.
func videoView(request *http.Request) (View, error) {
	if requestutil.Flag(request, "expand") {
		return ViewWithTagsAndAuthor, nil
	}
	return viewFromRequest(request)
}

// GET /api/v1/videos?expand=true
func (handler *VideoHandler) list(writer http.ResponseWriter, request *http.Request) {
	view, err := videoView(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	videos, err := handler.facade.List(request.Context(), view)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, videos)
}

// GET /api/v1/videos/{id}?expand=true
func (handler *VideoHandler) get(writer http.ResponseWriter, request *http.Request) {
	view, err := videoView(request)
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

/*
GET /api/v1/videos/search.

Request:
  - tags: comma-separated tag ids
  - match: any (default) | all
  - expand: bool (return videos with tags and author instead of ids)

Response:
  - 200: []string or []VideoWithTagsAndAuthor
  - 400: unknown match
*/
func (handler *VideoHandler) search(writer http.ResponseWriter, request *http.Request) {
	match := Match(request.URL.Query().Get("match"))

	result, err := handler.facade.Search(request.Context(), listParam(request, "tags"), match, requestutil.Flag(request, "expand"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
POST /api/v1/videos.

Request (Body):
  - title, url, start, end (the owner is the caller)

Response:
  - 201: {"id": ...}
  - 400: validation failure (e.g. end <= start)
  - 401: anonymous caller
  - 404: the caller has no author profile
*/
func (handler *VideoHandler) create(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredCallerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input video.CreateInput
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

func (handler *VideoHandler) update(writer http.ResponseWriter, request *http.Request) {
	var patch video.Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	callerAction(writer, request, func(callerID string) error {
		return handler.facade.Update(request.Context(), callerID, requestutil.ID(request, "id"), patch)
	})
}

func (handler *VideoHandler) delete(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.Delete(request.Context(), callerID, requestutil.ID(request, "id"))
	})
}

// PUT /api/v1/videos/{id}/tags/{tagID}
func (handler *VideoHandler) attachTag(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.AttachTag(request.Context(), callerID, requestutil.ID(request, "id"), requestutil.ID(request, "tagID"))
	})
}

func (handler *VideoHandler) detachTag(writer http.ResponseWriter, request *http.Request) {
	callerAction(writer, request, func(callerID string) error {
		return handler.facade.DetachTag(request.Context(), callerID, requestutil.ID(request, "id"), requestutil.ID(request, "tagID"))
	})
}
