// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"testing"
)

func TestValidateStore(t *testing.T) {
	cfg := defaultConfig()
	cfg.Store.Enabled = true
	cfg.Store.Path = ""

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for enabled store without path")
	}

	cfg.Store.InMemory = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("in-memory store needs no path, got %v", err)
	}
}

func TestValidateRateLimitsDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero rate limit")
	}

	cfg.Security.RateLimitDisabled = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limiting skips bounds, got %v", err)
	}
}

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://api.themoviedb.org/3", false},
		{"http://localhost:8080", false},
		{"", true},
		{"api.themoviedb.org/3", true},
		{"https://api.themoviedb.org/3?api_key=x", true},
		{"https://", true},
	}

	for _, tt := range tests {
		err := validateHTTPURL(tt.url, "FIELD")
		if (err != nil) != tt.wantErr {
			t.Errorf("validateHTTPURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestServerAddrAndWildcard(t *testing.T) {
	cfg := defaultConfig()
	if got := cfg.Server.Addr(); got != "0.0.0.0:8501" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8501", got)
	}
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS should be wildcard")
	}
	cfg.Security.CORSOrigins = []string{"https://movies.example"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origin should not be wildcard")
	}
	if cfg.IsProduction() {
		t.Error("default environment is development")
	}
}
