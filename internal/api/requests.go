// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Request structs validated with go-playground/validator tags:
//   - required: field must be present and non-zero
//   - notblank: string must contain a non-space character
//   - min,max: numeric bounds or string/slice length bounds
//   - omitempty: skip validation if field is empty/zero
package api

import "github.com/tomtom215/cinematch/internal/enrich"

// MoviesRequest holds the query parameters of GET /movies.
//
// Fields:
//   - Query: case-insensitive substring filter (optional)
//   - Limit: results per page (1-500)
//   - Offset: results to skip
type MoviesRequest struct {
	Query  string `json:"q" validate:"max=200"`
	Limit  int    `json:"limit" validate:"min=1,max=500"`
	Offset int    `json:"offset" validate:"min=0"`
}

// RecommendRequest holds the query parameters of GET /recommendations.
type RecommendRequest struct {
	Title  string `json:"title" validate:"required,notblank,max=500"`
	Enrich bool   `json:"enrich"`
}

// EnrichRequest is the body of POST /enrich, at most 100 items.
//
//	{"items":[{"kind":"unresolved","title":"Heat"},
//	          {"kind":"partial","title":"Beta","id":42,"poster_path":"/x.jpg","vote_average":7.5}]}
type EnrichRequest struct {
	Items enrich.Items `json:"items" validate:"required,min=1,max=100"`
}

// GenreMoviesRequest holds the path parameter of GET /genres/{id}/movies.
type GenreMoviesRequest struct {
	GenreID int64 `json:"id" validate:"min=1"`
}

// TopRatedRequest holds the query parameters of GET /top-rated. Page values
// below 1 are clamped rather than rejected.
type TopRatedRequest struct {
	Page int `json:"page" validate:"max=500"`
}
