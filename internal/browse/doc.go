// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package browse serves the TMDB-backed listings: the genre list, popular
// movies of a genre and the paged top-rated listing. Listing entries are
// enriched as partial records, so only the IMDb cross-reference costs a
// network call per movie.
package browse
