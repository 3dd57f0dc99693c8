// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package metrics provides Prometheus instrumentation for Cinematch.
//
// All collectors are registered on the default registry via promauto and
// exposed by the API at GET /metrics.
//
// # Metric Families
//
//   - cinematch_catalog_*: loaded catalog size and duplicate titles
//   - cinematch_recommend_*: similarity lookups by result, latency
//   - cinematch_enrich_*: per-item outcomes, batch latency, memo hits
//   - cinematch_tmdb_*: outbound TMDB calls by endpoint and status
//   - circuit_breaker_*: gobreaker state for the TMDB client
//   - cinematch_api_*: inbound HTTP requests
//
// # Usage
//
//	start := time.Now()
//	titles := engine.Recommend(title)
//	metrics.RecordRecommend(len(titles) > 0, time.Since(start))
package metrics
