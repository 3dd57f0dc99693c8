// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/browse"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/middleware"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Health status values.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// HealthResponse is the payload of GET /api/v1/health.
type HealthResponse struct {
	Status        string                  `json:"status"`
	Version       string                  `json:"version,omitempty"`
	UptimeSeconds float64                 `json:"uptime_seconds"`
	Recommend     recommend.Stats         `json:"recommend"`
	Enrich        EnrichHealth            `json:"enrich"`
	Browse        BrowseHealth            `json:"browse"`
	TMDB          TMDBHealth              `json:"tmdb"`
	Latency       []middleware.RouteStats `json:"latency,omitempty"`
}

// EnrichHealth reports enrichment cache state.
type EnrichHealth struct {
	CachedBatches int  `json:"cached_batches"`
	XrefEntries   *int `json:"xref_entries,omitempty"`
}

// BrowseHealth reports browse cache state.
type BrowseHealth struct {
	GenreCache browse.CacheStats `json:"genre_cache"`
}

// TMDBHealth reports the upstream metadata service state.
type TMDBHealth struct {
	APIKeyConfigured bool   `json:"api_key_configured"`
	CircuitBreaker   string `json:"circuit_breaker,omitempty"`
}

// Health handles GET /api/v1/health
// Always 200 while the process serves requests. Status is degraded when TMDB
// is unusable, since recommendations still work without it.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	resp := HealthResponse{
		Status:        StatusHealthy,
		Version:       h.deps.Version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Recommend:     h.deps.Recommender.Stats(),
		Enrich:        EnrichHealth{CachedBatches: h.deps.Enricher.CachedBatches()},
		Browse:        BrowseHealth{GenreCache: h.deps.Browser.GenreCacheStats()},
		TMDB:          TMDBHealth{APIKeyConfigured: h.deps.TMDBConfigured},
	}

	if h.deps.BreakerState != nil {
		resp.TMDB.CircuitBreaker = h.deps.BreakerState()
	}
	if h.deps.XrefCount != nil {
		if n, err := h.deps.XrefCount(); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to count xref entries")
		} else {
			resp.Enrich.XrefEntries = &n
		}
	}
	if h.deps.Monitor != nil {
		resp.Latency = h.deps.Monitor.Stats()
	}

	if !resp.TMDB.APIKeyConfigured || resp.TMDB.CircuitBreaker == "open" {
		resp.Status = StatusDegraded
	}

	rw.Success(resp)
}
