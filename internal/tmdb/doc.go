// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package tmdb provides a client for The Movie Database (TMDB) v3 REST API.

Only the endpoints Cinematch needs are implemented:

  - GET /search/movie: resolve a catalog title to a TMDB movie
  - GET /movie/{id}/external_ids: cross-reference a TMDB id to IMDb
  - GET /genre/movie/list: genre list for browsing
  - GET /discover/movie: popular movies of a genre
  - GET /movie/top_rated: paged top-rated listing

# Resilience

Client applies an outbound token bucket (golang.org/x/time/rate) before
every request and retries HTTP 429 responses with exponential backoff,
honouring Retry-After. CircuitBreakerClient wraps any API implementation
with sony/gobreaker so a failing TMDB stops receiving traffic for a while.

The API key travels as the api_key query parameter and is redacted from
every log line.

# Usage

	client := tmdb.NewClient(&cfg.TMDB)
	var api tmdb.API = client
	if cfg.TMDB.CircuitBreaker {
	    api = tmdb.NewCircuitBreakerClient(client)
	}
	results, err := api.SearchMovie(ctx, "Heat")

# Thread Safety

Client and CircuitBreakerClient are safe for concurrent use.
*/
package tmdb
