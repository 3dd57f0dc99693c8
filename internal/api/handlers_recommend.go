// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/enrich"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Recommendation is one recommended title. Movie is set when the request
// asked for enrichment.
type Recommendation struct {
	Title string         `json:"title"`
	Index int            `json:"index"`
	Score float32        `json:"score"`
	Movie *enrich.Record `json:"movie,omitempty"`
}

// RecommendationsResponse is the payload of GET /recommendations.
type RecommendationsResponse struct {
	Title           string           `json:"title"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Movies handles GET /api/v1/movies?q=&limit=&offset=
// Lists catalog titles in index order, optionally filtered by a
// case-insensitive substring.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := MoviesRequest{
		Query:  r.URL.Query().Get("q"),
		Limit:  getIntParam(r, "limit", h.deps.Browse.DefaultPageSize),
		Offset: getIntParam(r, "offset", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		writeValidationError(rw, apiErr)
		return
	}
	req.Limit = min(req.Limit, h.deps.Browse.MaxPageSize)

	entries, total := h.deps.Recommender.Catalog().Search(req.Query, req.Offset, req.Limit)
	if entries == nil {
		entries = []catalog.Entry{}
	}

	rw.SuccessWithPagination(entries, &PaginationMeta{
		Total:   total,
		Count:   len(entries),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: req.Offset+len(entries) < total,
	})
}

// Recommendations handles GET /api/v1/recommendations?title=&enrich=
// Returns the top-K most similar titles, enriched with TMDB metadata unless
// enrich=false.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := RecommendRequest{
		Title:  r.URL.Query().Get("title"),
		Enrich: getBoolParam(r, "enrich", true),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		writeValidationError(rw, apiErr)
		return
	}

	neighbors, err := h.deps.Recommender.Neighbors(req.Title)
	if errors.Is(err, recommend.ErrNotFound) {
		rw.NotFound(fmt.Sprintf("Movie %q not found in catalog", req.Title))
		return
	}
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("title", sanitizeLogValue(req.Title)).Msg("Recommendation lookup failed")
		rw.InternalError("Recommendation lookup failed")
		return
	}

	out := RecommendationsResponse{
		Title:           req.Title,
		Recommendations: make([]Recommendation, len(neighbors)),
	}
	titles := make([]string, len(neighbors))
	for i, n := range neighbors {
		out.Recommendations[i] = Recommendation{Title: n.Title, Index: n.Index, Score: n.Score}
		titles[i] = n.Title
	}

	if req.Enrich && len(titles) > 0 {
		records := h.deps.Enricher.Enrich(r.Context(), enrich.Titles(titles))
		for i := range records {
			out.Recommendations[i].Movie = &records[i]
		}
	}

	rw.Success(out)
}
