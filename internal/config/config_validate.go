// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"time"
)

// Bounds for user-tunable values.
const (
	maxTopK              = 50
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
	maxEnrichWorkers     = 256
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateCatalog,
		c.validateTMDB,
		c.validateEnrich,
		c.validateBrowse,
		c.validateStore,
		c.validateRateLimits,
		c.validateLogging,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.Environment != "" && !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if c.Catalog.SimilarityPath == "" {
		return fmt.Errorf("SIMILARITY_PATH is required")
	}
	if c.Catalog.TopK < 1 || c.Catalog.TopK > maxTopK {
		return fmt.Errorf("RECOMMEND_TOP_K must be between 1 and %d", maxTopK)
	}
	return nil
}

// validateTMDB validates the TMDB client settings. An empty API key is
// allowed: enrichment then degrades every unresolved item to a placeholder.
func (c *Config) validateTMDB() error {
	if err := validateHTTPURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.TMDB.ImageBaseURL, "TMDB_IMAGE_BASE_URL"); err != nil {
		return err
	}
	if c.TMDB.PosterSize == "" {
		return fmt.Errorf("TMDB_POSTER_SIZE is required")
	}
	if c.TMDB.SearchTimeout <= 0 || c.TMDB.ExternalIDsTimeout <= 0 || c.TMDB.RequestTimeout <= 0 {
		return fmt.Errorf("TMDB timeouts must be positive")
	}
	if c.TMDB.RequestsPerSecond < 0 {
		return fmt.Errorf("TMDB_REQUESTS_PER_SECOND must not be negative")
	}
	if c.TMDB.RequestsPerSecond > 0 && c.TMDB.Burst < 1 {
		return fmt.Errorf("TMDB_BURST must be at least 1 when rate limiting is enabled")
	}
	return nil
}

func (c *Config) validateEnrich() error {
	if c.Enrich.Workers < 0 || c.Enrich.Workers > maxEnrichWorkers {
		return fmt.Errorf("ENRICH_WORKERS must be between 0 and %d", maxEnrichWorkers)
	}
	if c.Enrich.BatchTimeout < 0 {
		return fmt.Errorf("ENRICH_BATCH_TIMEOUT must not be negative")
	}
	return nil
}

func (c *Config) validateBrowse() error {
	if c.Browse.DiscoverLimit < 1 {
		return fmt.Errorf("BROWSE_DISCOVER_LIMIT must be at least 1")
	}
	if c.Browse.RetryAttempts < 1 || c.Browse.RetryAttempts > 10 {
		return fmt.Errorf("BROWSE_RETRY_ATTEMPTS must be between 1 and 10")
	}
	if c.Browse.MinVoteCount < 0 {
		return fmt.Errorf("BROWSE_MIN_VOTE_COUNT must not be negative")
	}
	if c.Browse.DefaultPageSize < 1 || c.Browse.DefaultPageSize > c.Browse.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and API_MAX_PAGE_SIZE (%d)", c.Browse.MaxPageSize)
	}
	return nil
}

func (c *Config) validateStore() error {
	if c.Store.Enabled && !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("XREF_STORE_PATH is required when XREF_STORE_ENABLED=true")
	}
	return nil
}

// validateRateLimits validates inbound rate limiting bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasWildcardCORS reports whether any CORS origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
