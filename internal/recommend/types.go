// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "errors"

// ErrNotFound is returned when a title is not in the catalog.
var ErrNotFound = errors.New("title not found in catalog")

// Neighbor is a recommended catalog entry with its similarity to the query.
type Neighbor struct {
	Title string  `json:"title"`
	Index int     `json:"index"`
	Score float32 `json:"score"`
}

// Stats holds engine counters since startup.
type Stats struct {
	Requests        int64 `json:"requests"`
	NotFound        int64 `json:"not_found"`
	CatalogSize     int   `json:"catalog_size"`
	DuplicateTitles int   `json:"duplicate_titles"`
	K               int   `json:"k"`
}
