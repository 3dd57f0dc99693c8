// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package store persists TMDB-to-IMDb cross-references in BadgerDB so the
// external_ids lookup is skipped for movies already resolved, across
// restarts. A mapping to an empty IMDb id is stored too: it records that
// TMDB has no cross-reference for the movie.
package store
