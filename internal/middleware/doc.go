// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides chi-compatible HTTP middleware shared by the API
router.

Key Components:

  - RequestID: UUID request ids propagated through X-Request-ID and the
    logging context
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern
  - PerformanceMonitor: sliding-window latency percentiles per route,
    surfaced on /api/v1/health, with slow request logging

All middleware has the func(http.Handler) http.Handler shape:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(monitor.Middleware)

Route patterns are only known after chi has matched the request, so the
metrics middleware must run inside the router (r.Use), not around it.
*/
package middleware
