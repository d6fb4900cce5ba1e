package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"crudapi/internal/httpx"
	"crudapi/internal/resource"
)

// ResourceService is the store contract the handler drives.
type ResourceService[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	SearchByField(ctx context.Context, value string) ([]T, error)
	GetByFieldExact(ctx context.Context, value string) (T, error)
	Add(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	SortBy(ctx context.Context, field string, order resource.Order) ([]T, error)
}

// ResourceHandler serves the CRUD routes of one resource.
type ResourceHandler[T any] struct {
	service ResourceService[T]
	kind    resource.Kind[T]
	prefix  string
	logger  *slog.Logger
}

func NewResourceHandler[T any](service ResourceService[T], kind resource.Kind[T], logger *slog.Logger) *ResourceHandler[T] {
	return &ResourceHandler[T]{service: service, kind: kind, logger: logger}
}

// Register mounts the resource routes under prefix (e.g. "/api/books").
func (h *ResourceHandler[T]) Register(mux *http.ServeMux, prefix string) {
	h.prefix = prefix
	mux.HandleFunc("GET "+prefix, h.List)
	mux.HandleFunc("GET "+prefix+"/search", h.Search)
	mux.HandleFunc("GET "+prefix+"/lookup", h.Lookup)
	mux.HandleFunc("GET "+prefix+"/sort", h.Sort)
	mux.HandleFunc("GET "+prefix+"/{id}", h.Get)
	mux.HandleFunc("POST "+prefix, h.Create)
	mux.HandleFunc("PUT "+prefix+"/{id}", h.Update)
	mux.HandleFunc("DELETE "+prefix+"/{id}", h.Delete)
	mux.HandleFunc("DELETE "+prefix, h.DeleteAll)
}

// @Summary List or search resources
// @Description All resources, or those whose designated field contains the query value
// @Produce json
// @Success 200 {array} object
// @Router /{resource} [get]
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Has(h.kind.Field) {
		h.search(w, r, query.Get(h.kind.Field))
		return
	}

	items, err := h.service.GetAll(r.Context())
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

// @Summary Search resources by substring
// @Router /{resource}/search [get]
func (h *ResourceHandler[T]) Search(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, r.URL.Query().Get(h.kind.Field))
}

func (h *ResourceHandler[T]) search(w http.ResponseWriter, r *http.Request, value string) {
	items, err := h.service.SearchByField(r.Context(), value)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

// @Summary Get the first resource whose designated field equals the query value
// @Failure 404 {object} httpx.ErrorResponse
// @Router /{resource}/lookup [get]
func (h *ResourceHandler[T]) Lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has(h.kind.Field) {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("query parameter %q is required", h.kind.Field))
		return
	}

	item, err := h.service.GetByFieldExact(r.Context(), query.Get(h.kind.Field))
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

// @Summary Sort resources by a field
// @Param sortBy query string true "Field name"
// @Param sortOrder query string false "asc or desc" default(asc)
// @Failure 400 {object} httpx.ErrorResponse
// @Router /{resource}/sort [get]
func (h *ResourceHandler[T]) Sort(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	items, err := h.service.SortBy(r.Context(), query.Get("sortBy"), resource.ParseOrder(query.Get("sortOrder")))
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

// @Summary Get a resource by id
// @Failure 404 {object} httpx.ErrorResponse
// @Router /{resource}/{id} [get]
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

// @Summary Create a resource
// @Accept json
// @Success 201 {object} object
// @Router /{resource} [post]
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decode(w, r)
	if !ok {
		return
	}

	created, err := h.service.Add(r.Context(), item)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("%s/%d", h.prefix, h.kind.ID(created)))
	httpx.JSON(w, http.StatusCreated, created)
}

// @Summary Replace a resource
// @Accept json
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /{resource}/{id} [put]
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	item, ok := h.decode(w, r)
	if !ok {
		return
	}
	if h.kind.ID(item) != id {
		httpx.JSONError(w, r, http.StatusBadRequest, "ID_MISMATCH", "path id does not match body id")
		return
	}

	if _, err := h.service.GetByID(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	if err := h.service.Update(r.Context(), item); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// @Summary Delete a resource
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /{resource}/{id} [delete]
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.service.GetByID(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// @Summary Delete every resource
// @Success 204
// @Router /{resource} [delete]
func (h *ResourceHandler[T]) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

func (h *ResourceHandler[T]) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *ResourceHandler[T]) decode(w http.ResponseWriter, r *http.Request) (T, bool) {
	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large")
			return item, false
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return item, false
	}
	return item, true
}

func (h *ResourceHandler[T]) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, resource.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", h.kind.Name+" not found")
	case errors.Is(err, resource.ErrUnknownField):
		httpx.JSONError(w, r, http.StatusBadRequest, "UNKNOWN_FIELD", err.Error())
	default:
		httpx.LoggerFrom(r, h.logger).Error("store operation failed",
			"resource", h.kind.Name,
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
