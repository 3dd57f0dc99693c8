// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig()
//  2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: override any mapped setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	TMDB     TMDBConfig     `koanf:"tmdb"`
	Enrich   EnrichConfig   `koanf:"enrich"`
	Browse   BrowseConfig   `koanf:"browse"`
	Store    StoreConfig    `koanf:"store"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig points at the precomputed artifacts loaded at startup.
//
// Environment Variables:
//   - CATALOG_PATH: catalog file (.json or .csv)
//   - SIMILARITY_PATH: similarity matrix file (.json or .bin)
//   - RECOMMEND_TOP_K: number of recommendations returned (default: 5)
type CatalogConfig struct {
	Path           string `koanf:"path"`
	SimilarityPath string `koanf:"similarity_path"`
	TopK           int    `koanf:"top_k"`
}

// TMDBConfig holds The Movie Database API client settings.
//
// SearchTimeout and ExternalIDsTimeout bound the two per-item enrichment
// lookups; RequestTimeout applies to browse listings.
type TMDBConfig struct {
	APIKey             string        `koanf:"api_key"`
	BaseURL            string        `koanf:"base_url"`
	ImageBaseURL       string        `koanf:"image_base_url"`
	PosterSize         string        `koanf:"poster_size"`
	PlaceholderPoster  string        `koanf:"placeholder_poster"`
	Language           string        `koanf:"language"`
	SearchTimeout      time.Duration `koanf:"search_timeout"`
	ExternalIDsTimeout time.Duration `koanf:"external_ids_timeout"`
	RequestTimeout     time.Duration `koanf:"request_timeout"`
	RequestsPerSecond  float64       `koanf:"requests_per_second"`
	Burst              int           `koanf:"burst"`
	CircuitBreaker     bool          `koanf:"circuit_breaker"`
}

// EnrichConfig controls the metadata enrichment worker pool.
type EnrichConfig struct {
	Workers      int           `koanf:"workers"` // 0 = runtime.NumCPU()
	BatchTimeout time.Duration `koanf:"batch_timeout"`
}

// BrowseConfig controls genre and top-rated listings.
type BrowseConfig struct {
	DiscoverLimit   int           `koanf:"discover_limit"`
	MinVoteCount    int           `koanf:"min_vote_count"`
	SortBy          string        `koanf:"sort_by"`
	GenreCacheTTL   time.Duration `koanf:"genre_cache_ttl"`
	RetryAttempts   uint          `koanf:"retry_attempts"`
	RetryDelay      time.Duration `koanf:"retry_delay"`
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
}

// StoreConfig configures the optional BadgerDB cross-reference store that
// persists TMDB to IMDb id mappings across restarts.
type StoreConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`

	// GCInterval is how often value log GC runs on the on-disk store.
	GCInterval time.Duration `koanf:"gc_interval"`
}

// SecurityConfig holds inbound request protection settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration with the following precedence (highest wins):
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
