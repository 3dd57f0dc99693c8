// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/browse"
)

// Genres handles GET /api/v1/genres
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	genres, err := h.deps.Browser.Genres(r.Context())
	if err != nil {
		writeUpstreamError(rw, err)
		return
	}
	rw.Success(genres)
}

// GenreMovies handles GET /api/v1/genres/{id}/movies
// Returns the most popular well-voted movies of a genre, enriched.
func (h *Handler) GenreMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		rw.BadRequest("Genre id must be an integer")
		return
	}
	req := GenreMoviesRequest{GenreID: id}
	if apiErr := validateRequest(&req); apiErr != nil {
		writeValidationError(rw, apiErr)
		return
	}

	records, err := h.deps.Browser.ByGenre(r.Context(), req.GenreID)
	if err != nil {
		writeUpstreamError(rw, err)
		return
	}
	rw.Success(records)
}

// TopRated handles GET /api/v1/top-rated?page=N
// The page is request-scoped and clamped to at least 1.
func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := TopRatedRequest{Page: browse.ClampPage(getIntParam(r, "page", 1))}
	if apiErr := validateRequest(&req); apiErr != nil {
		writeValidationError(rw, apiErr)
		return
	}

	page, err := h.deps.Browser.TopRated(r.Context(), req.Page)
	if err != nil {
		writeUpstreamError(rw, err)
		return
	}
	rw.Success(page)
}
