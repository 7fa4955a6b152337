// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/platform/middleware"
	requestutil "github.com/taibuivan/kirinukist/internal/platform/request"
	"github.com/taibuivan/kirinukist/internal/platform/respond"
)

// TagHandler implements the HTTP layer for the [Tags] facade.
type TagHandler struct {
	facade *Tags
}

// NewTagHandler constructs a new [TagHandler].
func NewTagHandler(facade *Tags) *TagHandler {
	return &TagHandler{facade: facade}
}

// Routes returns a [chi.Router] configured with tag endpoints.
func (handler *TagHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/", handler.create)
		protected.Patch("/{id}", handler.update)
		protected.Delete("/{id}", handler.delete)
	})

	return router
}

// GET /api/v1/tags?videos=true
func (handler *TagHandler) list(writer http.ResponseWriter, request *http.Request) {
	view, err := viewFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tags, err := handler.facade.List(request.Context(), view)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

// GET /api/v1/tags/{id}?videos=true
func (handler *TagHandler) get(writer http.ResponseWriter, request *http.Request) {
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

/*
POST /api/v1/tags.

Response:
  - 201: {"id": ...}
  - 409: a tag with the same normalised name exists
*/
func (handler *TagHandler) create(writer http.ResponseWriter, request *http.Request) {
	var input tag.CreateInput
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

func (handler *TagHandler) update(writer http.ResponseWriter, request *http.Request) {
	var patch tag.Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.facade.Update(request.Context(), requestutil.ID(request, "id"), patch); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *TagHandler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.facade.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
