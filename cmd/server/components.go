// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/browse"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/enrich"
	"github.com/tomtom215/cinematch/internal/middleware"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/store"
	"github.com/tomtom215/cinematch/internal/supervisor"
	"github.com/tomtom215/cinematch/internal/supervisor/services"
	"github.com/tomtom215/cinematch/internal/tmdb"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// Performance monitor window and slow request threshold.
const (
	monitorSamples       = 1000
	slowRequestThreshold = 2 * time.Second
)

// components holds everything main wires together.
type components struct {
	engine   *recommend.Engine
	client   *tmdb.Client
	breaker  *tmdb.CircuitBreakerClient
	xref     *store.XrefStore
	enricher *enrich.Enricher
	browser  *browse.Service
	handler  http.Handler
}

// buildComponents loads the artifacts and constructs the service graph.
// The caller must call close when done.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func buildComponents(cfg *config.Config, logger zerolog.Logger) (*components, error) {
	ds, err := catalog.Load(cfg.Catalog.Path, cfg.Catalog.SimilarityPath)
	if err != nil {
		return nil, err
	}

	engine, err := recommend.NewEngine(ds, &recommend.Config{K: cfg.Catalog.TopK}, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommend engine: %w", err)
	}
	stats := engine.Stats()
	logger.Info().
		Int("titles", stats.CatalogSize).
		Int("duplicate_titles", stats.DuplicateTitles).
		Int("k", stats.K).
		Msg("Catalog loaded")

	c := &components{engine: engine}

	c.client = tmdb.NewClient(&cfg.TMDB)
	var upstream tmdb.API = c.client
	if cfg.TMDB.CircuitBreaker {
		c.breaker = tmdb.NewCircuitBreakerClient(c.client)
		upstream = c.breaker
	}
	if !c.client.HasAPIKey() {
		logger.Warn().Msg("TMDB_API_KEY not set, enrichment will return placeholder records")
	}

	var xref enrich.XrefStore
	if cfg.Store.Enabled {
		c.xref, err = store.Open(&cfg.Store)
		if err != nil {
			return nil, err
		}
		xref = c.xref
		logger.Info().Str("path", cfg.Store.Path).Bool("in_memory", cfg.Store.InMemory).Msg("Xref store opened")
	}

	c.enricher = enrich.New(upstream, xref, enrich.OptionsFromConfig(cfg), logger)
	c.browser = browse.New(upstream, c.enricher, &cfg.Browse, logger)

	deps := api.Dependencies{
		Recommender:    engine,
		Enricher:       c.enricher,
		Browser:        c.browser,
		TMDBConfigured: c.client.HasAPIKey(),
		Monitor:        middleware.NewPerformanceMonitor(monitorSamples, slowRequestThreshold),
		Browse:         cfg.Browse,
		Version:        version,
	}
	if c.breaker != nil {
		deps.BreakerState = c.breaker.State
	}
	if c.xref != nil {
		deps.XrefCount = c.xref.Count
	}

	router := api.NewRouter(api.NewHandler(deps), api.NewChiMiddlewareFromConfig(&cfg.Security))
	c.handler = router.SetupChi()

	return c, nil
}

// addBackgroundServices registers the periodic jobs that apply to cfg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (c *components) addBackgroundServices(tree *supervisor.SupervisorTree, cfg *config.Config, logger zerolog.Logger) {
	if c.client.HasAPIKey() {
		tree.AddBackgroundService(services.NewGenreRefreshService(c.browser, cfg.Browse.GenreCacheTTL/2, logger))
	}
	if c.xref != nil && !cfg.Store.InMemory {
		tree.AddBackgroundService(services.NewStoreGCService(c.xref, cfg.Store.GCInterval, logger))
	}
}

// close releases background resources in reverse construction order.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (c *components) close(logger zerolog.Logger) {
	if c.browser != nil {
		c.browser.Close()
	}
	if c.xref != nil {
		if err := c.xref.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing xref store")
		}
	}
}
