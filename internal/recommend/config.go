// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "fmt"

// Limits for the number of recommendations per lookup.
const (
	DefaultK = 5
	MaxK     = 50
)

// Config contains configuration for the similarity engine.
type Config struct {
	// K is the number of recommendations returned per lookup.
	K int `json:"k"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{K: DefaultK}
}

// Validate checks the configuration bounds.
func (c *Config) Validate() error {
	if c.K < 1 || c.K > MaxK {
		return fmt.Errorf("k must be between 1 and %d, got %d", MaxK, c.K)
	}
	return nil
}
