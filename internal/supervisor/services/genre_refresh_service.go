// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinematch/internal/tmdb"
)

// GenreRefresher reloads the genre list, bypassing any cache.
type GenreRefresher interface {
	RefreshGenres(ctx context.Context) ([]tmdb.Genre, error)
}

// GenreRefreshService keeps the genre cache warm so /genres never waits on
// TMDB. It refreshes once at startup and then every Interval.
type GenreRefreshService struct {
	refresher GenreRefresher
	interval  time.Duration
	timeout   time.Duration
	logger    zerolog.Logger
	name      string
}

// NewGenreRefreshService creates the refresher. Interval should be shorter
// than the genre cache TTL; non-positive values default to one hour.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewGenreRefreshService(refresher GenreRefresher, interval time.Duration, logger zerolog.Logger) *GenreRefreshService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &GenreRefreshService{
		refresher: refresher,
		interval:  interval,
		timeout:   30 * time.Second,
		logger:    logger.With().Str("service", "genre-refresh").Logger(),
		name:      "genre-refresh-service",
	}
}

// Serve implements suture.Service. Without an API key there is nothing to
// refresh, so the service asks not to be restarted.
func (s *GenreRefreshService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("genre refresh service starting")

	if err := s.refresh(ctx); errors.Is(err, tmdb.ErrMissingAPIKey) {
		s.logger.Warn().Msg("TMDB API key not configured, genre refresh disabled")
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("genre refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			_ = s.refresh(ctx)
		}
	}
}

func (s *GenreRefreshService) refresh(ctx context.Context) error {
	refreshCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	genres, err := s.refresher.RefreshGenres(refreshCtx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("genre refresh failed")
		}
		return err
	}
	s.logger.Debug().Int("genres", len(genres)).Msg("genre list refreshed")
	return nil
}

// String returns the service name for logging.
func (s *GenreRefreshService) String() string {
	return s.name
}
