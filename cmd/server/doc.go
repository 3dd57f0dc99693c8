// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package main is the entry point for the Cinematch server.

Cinematch serves content-based movie recommendations from a precomputed
similarity matrix and decorates them with TMDB metadata (posters, ratings,
release dates and outbound links).

# Application Architecture

	RootSupervisor ("cinematch")
	├── BackgroundSupervisor ("background-layer")
	│   ├── GenreRefreshService (when TMDB_API_KEY is set)
	│   └── StoreGCService (when the on-disk xref store is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with the configured level and format
 3. Artifacts: catalog and similarity matrix, fail fast on mismatch
 4. TMDB client: outbound rate limit and circuit breaker
 5. Cross-reference store: optional BadgerDB cache of IMDb ids
 6. Enricher, browse service and Chi router
 7. Supervisor tree

# Example Usage

	export CATALOG_PATH=/data/movie_list.json
	export SIMILARITY_PATH=/data/similarity.bin.gz
	export TMDB_API_KEY=your-api-key
	./cinematch

Without TMDB_API_KEY the server still answers recommendation lookups;
enrichment degrades to placeholder records and /health reports degraded.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to HTTP_SHUTDOWN_TIMEOUT, then the store is closed.
*/
package main
