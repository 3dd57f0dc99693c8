// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides centralized configuration management for Cinematch.

Configuration is loaded with Koanf v2 from three layers, highest priority last:
built-in defaults, an optional YAML file, and environment variables.

# Configuration Structure

  - ServerConfig: HTTP listener (host, port, timeouts, environment)
  - CatalogConfig: catalog and similarity matrix artifact paths, top-K
  - TMDBConfig: TMDB API key, endpoints, per-lookup timeouts, outbound rate limit
  - EnrichConfig: enrichment worker pool size and shared batch timeout
  - BrowseConfig: genre discovery and top-rated listing parameters
  - StoreConfig: optional BadgerDB cross-reference store
  - SecurityConfig: inbound rate limiting and CORS
  - LoggingConfig: zerolog level, format, caller info

# Environment Variables

Artifacts:
  - CATALOG_PATH: catalog file, .json or .csv (default: /data/movie_list.json)
  - SIMILARITY_PATH: matrix file, .json or .bin (default: /data/similarity.bin)
  - RECOMMEND_TOP_K: recommendations per lookup (default: 5)

TMDB:
  - TMDB_API_KEY: v3 API key
  - TMDB_SEARCH_TIMEOUT: title search timeout (default: 2s)
  - TMDB_EXTERNAL_IDS_TIMEOUT: cross-reference timeout (default: 1s)
  - TMDB_REQUESTS_PER_SECOND: outbound rate limit, 0 disables (default: 40)

Enrichment:
  - ENRICH_WORKERS: concurrent lookups per batch (default: number of CPUs)
  - ENRICH_BATCH_TIMEOUT: upper bound on one shared batch (default: 30s)

Cross-reference store:
  - XREF_STORE_ENABLED, XREF_STORE_PATH, XREF_STORE_IN_MEMORY
  - XREF_STORE_GC_INTERVAL: value log GC period (default: 10m)

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8501)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated origins (default: *)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}

# Thread Safety

Config is immutable after Load() and safe for concurrent reads.
*/
package config
