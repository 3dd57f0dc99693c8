// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinematch/internal/browse"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/enrich"
	"github.com/tomtom215/cinematch/internal/middleware"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/tmdb"
)

// Recommender serves similarity lookups. *recommend.Engine implements it.
type Recommender interface {
	Neighbors(title string) ([]recommend.Neighbor, error)
	Catalog() *catalog.Catalog
	Stats() recommend.Stats
}

// Enricher resolves items to display records. *enrich.Enricher implements it.
type Enricher interface {
	Enrich(ctx context.Context, items []enrich.Item) []enrich.Record
	CachedBatches() int
}

// Browser serves TMDB listings. *browse.Service implements it.
type Browser interface {
	Genres(ctx context.Context) ([]tmdb.Genre, error)
	ByGenre(ctx context.Context, genreID int64) ([]enrich.Record, error)
	TopRated(ctx context.Context, page int) (*browse.TopRatedPage, error)
	GenreCacheStats() browse.CacheStats
}

// Dependencies are the services the handlers delegate to.
type Dependencies struct {
	Recommender Recommender
	Enricher    Enricher
	Browser     Browser

	// BreakerState reports the TMDB circuit breaker state; nil when the
	// breaker is disabled.
	BreakerState func() string

	// TMDBConfigured is false when no TMDB API key is set.
	TMDBConfigured bool

	// XrefCount reports persisted id mappings; nil when the store is disabled.
	XrefCount func() (int, error)

	Monitor *middleware.PerformanceMonitor
	Browse  config.BrowseConfig
	Version string
}

// Handler holds the HTTP handlers for every API endpoint.
type Handler struct {
	deps      Dependencies
	startTime time.Time
}

// NewHandler creates a handler over deps.
//
//nolint:gocritic // Dependencies is copied once at startup
func NewHandler(deps Dependencies) *Handler {
	if deps.Browse.DefaultPageSize <= 0 {
		deps.Browse.DefaultPageSize = 50
	}
	if deps.Browse.MaxPageSize <= 0 {
		deps.Browse.MaxPageSize = 500
	}
	return &Handler{
		deps:      deps,
		startTime: time.Now(),
	}
}
