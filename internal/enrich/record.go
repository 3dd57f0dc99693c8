// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package enrich

// Record is an enriched, display-ready movie.
type Record struct {
	Title     string  `json:"title"`
	PosterURL string  `json:"poster_url"`
	Rating    float64 `json:"rating"`
	TMDBID    *int64  `json:"tmdb_id"`
	IMDbID    *string `json:"imdb_id"`
	Links     Links   `json:"links"`

	// Degraded is set when an unresolved title could not be matched on TMDB.
	Degraded bool `json:"degraded,omitempty"`
}
