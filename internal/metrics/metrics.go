// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog Metrics
	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_catalog_entries",
			Help: "Number of titles in the loaded catalog",
		},
	)

	CatalogDuplicateTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_catalog_duplicate_titles",
			Help: "Number of catalog entries shadowed by an earlier entry with the same title",
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_recommend_requests_total",
			Help: "Total number of similarity lookups",
		},
		[]string{"result"}, // "hit", "not_found"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_recommend_duration_seconds",
			Help:    "Duration of similarity lookups in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// Enrichment Metrics
	EnrichItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_enrich_items_total",
			Help: "Total number of enriched items by input kind and outcome",
		},
		[]string{"kind", "outcome"}, // kind: "unresolved", "partial"; outcome: "resolved", "degraded"
	)

	EnrichBatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_enrich_batch_duration_seconds",
			Help:    "Duration of enrichment batches in seconds (cache misses only)",
			Buckets: prometheus.DefBuckets,
		},
	)

	EnrichCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_enrich_cache_total",
			Help: "Enrichment memo lookups",
		},
		[]string{"result"}, // "hit", "miss", "shared", "abandoned"
	)

	// TMDB Client Metrics
	TMDBRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_tmdb_requests_total",
			Help: "Total number of TMDB API requests",
		},
		[]string{"endpoint", "status"},
	)

	TMDBRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinematch_tmdb_request_duration_seconds",
			Help:    "Duration of TMDB API requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"endpoint"},
	)

	TMDBRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinematch_tmdb_rate_limited_total",
			Help: "Number of HTTP 429 responses received from TMDB",
		},
	)

	// Cross-reference store metrics
	XrefStoreLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_xref_store_lookups_total",
			Help: "Persistent TMDB to IMDb id store lookups",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinematch_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)
)

// RecordRecommend records a similarity lookup.
func RecordRecommend(found bool, duration time.Duration) {
	result := "hit"
	if !found {
		result = "not_found"
	}
	RecommendRequests.WithLabelValues(result).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordEnrichItem records the outcome of one enriched item.
func RecordEnrichItem(kind string, degraded bool) {
	outcome := "resolved"
	if degraded {
		outcome = "degraded"
	}
	EnrichItems.WithLabelValues(kind, outcome).Inc()
}

// RecordTMDBRequest records a TMDB API call. statusCode 0 means the request
// never produced a response (timeout, connection error).
func RecordTMDBRequest(endpoint string, statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	TMDBRequests.WithLabelValues(endpoint, status).Inc()
	TMDBRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
