// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinematch/config.yaml",
	"/etc/cinematch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8501,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Catalog: CatalogConfig{
			Path:           "/data/movie_list.json",
			SimilarityPath: "/data/similarity.bin",
			TopK:           5,
		},
		TMDB: TMDBConfig{
			APIKey:             "",
			BaseURL:            "https://api.themoviedb.org/3",
			ImageBaseURL:       "https://image.tmdb.org/t/p",
			PosterSize:         "w500",
			PlaceholderPoster:  "https://via.placeholder.com/500x750?text=No+Poster",
			Language:           "",
			SearchTimeout:      2 * time.Second,
			ExternalIDsTimeout: 1 * time.Second,
			RequestTimeout:     5 * time.Second,
			RequestsPerSecond:  40, // TMDB allows roughly 50 req/s per IP
			Burst:              20,
			CircuitBreaker:     true,
		},
		Enrich: EnrichConfig{
			Workers:      0,
			BatchTimeout: 30 * time.Second,
		},
		Browse: BrowseConfig{
			DiscoverLimit:   10,
			MinVoteCount:    300,
			SortBy:          "popularity.desc",
			GenreCacheTTL:   6 * time.Hour,
			RetryAttempts:   3,
			RetryDelay:      200 * time.Millisecond,
			DefaultPageSize: 50,
			MaxPageSize:     500,
		},
		Store: StoreConfig{
			Enabled:    false,
			Path:       "/data/xref",
			InMemory:   false,
			GCInterval: 10 * time.Minute,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults
//  2. Config File (optional YAML)
//  3. Environment Variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// TMDB_API_KEY -> tmdb.api_key, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated env strings to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unmapped variables are ignored so unrelated environment does not leak in.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Catalog artifacts
	"catalog_path":    "catalog.path",
	"similarity_path": "catalog.similarity_path",
	"recommend_top_k": "catalog.top_k",

	// TMDB
	"tmdb_api_key":              "tmdb.api_key",
	"tmdb_base_url":             "tmdb.base_url",
	"tmdb_image_base_url":       "tmdb.image_base_url",
	"tmdb_poster_size":          "tmdb.poster_size",
	"tmdb_placeholder_poster":   "tmdb.placeholder_poster",
	"tmdb_language":             "tmdb.language",
	"tmdb_search_timeout":       "tmdb.search_timeout",
	"tmdb_external_ids_timeout": "tmdb.external_ids_timeout",
	"tmdb_request_timeout":      "tmdb.request_timeout",
	"tmdb_requests_per_second":  "tmdb.requests_per_second",
	"tmdb_burst":                "tmdb.burst",
	"tmdb_circuit_breaker":      "tmdb.circuit_breaker",

	// Enrichment
	"enrich_workers":       "enrich.workers",
	"enrich_batch_timeout": "enrich.batch_timeout",

	// Browse
	"browse_discover_limit":  "browse.discover_limit",
	"browse_min_vote_count":  "browse.min_vote_count",
	"browse_sort_by":         "browse.sort_by",
	"browse_genre_cache_ttl": "browse.genre_cache_ttl",
	"browse_retry_attempts":  "browse.retry_attempts",
	"browse_retry_delay":     "browse.retry_delay",
	"api_default_page_size":  "browse.default_page_size",
	"api_max_page_size":      "browse.max_page_size",

	// Cross-reference store
	"xref_store_enabled":     "store.enabled",
	"xref_store_path":        "store.path",
	"xref_store_in_memory":   "store.in_memory",
	"xref_store_gc_interval": "store.gc_interval",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - TMDB_API_KEY -> tmdb.api_key
//   - SIMILARITY_PATH -> catalog.similarity_path
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
