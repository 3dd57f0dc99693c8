// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api provides the HTTP JSON API for Cinematch.

Endpoints (all under /api/v1 unless noted):

	GET  /health                  service, cache and TMDB breaker state
	GET  /movies?q=&limit=&offset= catalog titles, optional substring filter
	GET  /recommendations?title=  top-K similar titles, enriched unless enrich=false
	POST /enrich                  enrich a batch of tagged items
	GET  /genres                  TMDB genre list (cached)
	GET  /genres/{id}/movies      popular movies of a genre, enriched
	GET  /top-rated?page=N        one enriched page of top-rated movies
	GET  /metrics                 Prometheus exposition (root path)

Every JSON response uses the APIResponse envelope:

	{"success":true,"data":{...},"meta":{"request_id":"...","timestamp":"..."}}
	{"success":false,"error":{"code":"NOT_FOUND","message":"..."},"meta":{...}}

Error mapping:

  - unknown catalog title or genre: 404 NOT_FOUND
  - invalid parameters: 400 VALIDATION_ERROR or BAD_REQUEST
  - TMDB failures on browse endpoints: 502 EXTERNAL_SERVICE_FAILED
  - TMDB key missing or circuit open: 503 SERVICE_UNAVAILABLE
  - per-client rate limit: 429 TOO_MANY_REQUESTS

Enrichment never fails a request: unresolvable items are returned with
"degraded": true, a placeholder poster and search links.

Middleware stack: request id, real IP, panic recovery, CORS (go-chi/cors),
gzip, security headers, Prometheus metrics, latency monitor and per-client
rate limiting (go-chi/httprate).
*/
package api
