// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingAPIKey is returned without a network call when no key is configured.
	ErrMissingAPIKey = errors.New("tmdb: api key not configured")

	// ErrUnauthorized is returned for HTTP 401 responses.
	ErrUnauthorized = errors.New("tmdb: unauthorized")

	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("tmdb: resource not found")

	// ErrRateLimited is returned when HTTP 429 persists past all retries.
	ErrRateLimited = errors.New("tmdb: rate limit exceeded")

	// ErrCircuitOpen is returned when the circuit breaker rejects a request.
	ErrCircuitOpen = errors.New("tmdb: circuit breaker open")
)

// APIError is a non-2xx TMDB response.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tmdb %s: HTTP %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("tmdb %s: HTTP %d", e.Endpoint, e.StatusCode)
}

// Unwrap maps well-known status codes to sentinel errors.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return nil
	}
}
