// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// breakerName labels circuit breaker metrics.
const breakerName = "tmdb-api"

// CircuitBreakerClient wraps an API with the circuit breaker pattern so a
// failing or slow TMDB stops receiving traffic until it recovers.
//
// The breaker uses real time for its interval and timeout; tests drive it
// through request counts, not clocks.
type CircuitBreakerClient struct {
	api  API
	cb   *gobreaker.CircuitBreaker[interface{}]
	name string
}

// NewCircuitBreakerClient wraps api with a circuit breaker.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(api API) *CircuitBreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		// Lookups that TMDB answers with "no such movie" or that the caller
		// abandoned say nothing about TMDB health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, ErrMissingAPIKey) ||
				errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		api:  api,
		cb:   cb,
		name: breakerName,
	}
}

// execute wraps a TMDB call with circuit breaker protection.
// Rejections are reported as ErrCircuitOpen.
func (cbc *CircuitBreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Debug().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)

	return result, nil
}

// castResult safely type-casts the circuit breaker result with error checking
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// State returns the breaker state as "closed", "half-open" or "open".
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// SearchMovie searches movies with circuit breaker protection
func (cbc *CircuitBreakerClient) SearchMovie(ctx context.Context, query string) ([]Movie, error) {
	return castResult[[]Movie](cbc.execute(func() (interface{}, error) {
		return cbc.api.SearchMovie(ctx, query)
	}))
}

// ExternalIDs retrieves cross-references with circuit breaker protection
func (cbc *CircuitBreakerClient) ExternalIDs(ctx context.Context, movieID int64) (*ExternalIDs, error) {
	return castResult[*ExternalIDs](cbc.execute(func() (interface{}, error) {
		return cbc.api.ExternalIDs(ctx, movieID)
	}))
}

// Genres retrieves the genre list with circuit breaker protection
func (cbc *CircuitBreakerClient) Genres(ctx context.Context) ([]Genre, error) {
	return castResult[[]Genre](cbc.execute(func() (interface{}, error) {
		return cbc.api.Genres(ctx)
	}))
}

// Discover retrieves a discover page with circuit breaker protection
func (cbc *CircuitBreakerClient) Discover(ctx context.Context, params DiscoverParams) (*MoviePage, error) {
	return castResult[*MoviePage](cbc.execute(func() (interface{}, error) {
		return cbc.api.Discover(ctx, params)
	}))
}

// TopRated retrieves a top-rated page with circuit breaker protection
func (cbc *CircuitBreakerClient) TopRated(ctx context.Context, page int) (*MoviePage, error) {
	return castResult[*MoviePage](cbc.execute(func() (interface{}, error) {
		return cbc.api.TopRated(ctx, page)
	}))
}

var _ API = (*Client)(nil)
var _ API = (*CircuitBreakerClient)(nil)
