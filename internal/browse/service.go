// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package browse

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/enrich"
	"github.com/tomtom215/cinematch/internal/tmdb"
)

// ErrUnknownGenre is returned for a genre id absent from the TMDB genre list.
var ErrUnknownGenre = errors.New("unknown genre")

const genresCacheKey = "genres:movie"

// Enricher enriches listing entries.
type Enricher interface {
	Enrich(ctx context.Context, items []enrich.Item) []enrich.Record
}

// TopRatedPage is one enriched page of the top-rated listing.
type TopRatedPage struct {
	Page       int             `json:"page"`
	PrevPage   *int            `json:"prev_page"`
	NextPage   *int            `json:"next_page"`
	TotalPages int             `json:"total_pages"`
	Movies     []enrich.Record `json:"movies"`
}

// Service serves genre and top-rated browsing.
type Service struct {
	api      tmdb.API
	enricher Enricher
	cfg      config.BrowseConfig
	genres   *cache.Cache
	logger   zerolog.Logger
}

// New creates a browse service. Call Close to stop the genre cache sweep.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(api tmdb.API, enricher Enricher, cfg *config.BrowseConfig, logger zerolog.Logger) *Service {
	c := *cfg
	if c.RetryAttempts == 0 {
		c.RetryAttempts = 1
	}
	return &Service{
		api:      api,
		enricher: enricher,
		cfg:      c,
		genres:   cache.New(c.GenreCacheTTL),
		logger:   logger.With().Str("component", "browse").Logger(),
	}
}

// Close releases background resources.
func (s *Service) Close() {
	s.genres.Close()
}

// CacheStats summarizes genre cache usage.
type CacheStats struct {
	Entries int64   `json:"entries"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate_percent"`
}

// GenreCacheStats reports genre cache usage for the health endpoint.
func (s *Service) GenreCacheStats() CacheStats {
	stats := s.genres.GetStats()
	return CacheStats{
		Entries: stats.TotalKeys,
		Hits:    stats.Hits,
		Misses:  stats.Misses,
		HitRate: s.genres.HitRate(),
	}
}

// Genres returns the TMDB movie genre list, cached for GenreCacheTTL and
// fetched with retry.
func (s *Service) Genres(ctx context.Context) ([]tmdb.Genre, error) {
	if v, ok := s.genres.Get(genresCacheKey); ok {
		return v.([]tmdb.Genre), nil
	}
	return s.RefreshGenres(ctx)
}

// RefreshGenres fetches the genre list from TMDB regardless of the cache and
// stores the result.
func (s *Service) RefreshGenres(ctx context.Context) ([]tmdb.Genre, error) {
	var genres []tmdb.Genre
	err := retry.Do(
		func() error {
			var err error
			genres, err = s.api.Genres(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(s.cfg.RetryAttempts),
		retry.Delay(s.cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Warn().Err(err).Uint("attempt", n+1).Msg("genre list fetch failed, retrying")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch genres: %w", err)
	}

	if genres == nil {
		genres = []tmdb.Genre{}
	}
	s.genres.Set(genresCacheKey, genres)
	return genres, nil
}

// isRetryable reports whether a failed TMDB call may succeed on retry.
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, tmdb.ErrMissingAPIKey),
		errors.Is(err, tmdb.ErrUnauthorized),
		errors.Is(err, tmdb.ErrNotFound),
		errors.Is(err, tmdb.ErrCircuitOpen),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return true
	}
}

// ByGenre returns the first DiscoverLimit popular movies of a genre that
// meet the MinVoteCount threshold, enriched.
func (s *Service) ByGenre(ctx context.Context, genreID int64) ([]enrich.Record, error) {
	genres, err := s.Genres(ctx)
	if err != nil {
		return nil, err
	}
	if !containsGenre(genres, genreID) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGenre, genreID)
	}

	page, err := s.api.Discover(ctx, tmdb.DiscoverParams{
		GenreID:      genreID,
		SortBy:       s.cfg.SortBy,
		MinVoteCount: s.cfg.MinVoteCount,
	})
	if err != nil {
		return nil, fmt.Errorf("discover genre %d: %w", genreID, err)
	}

	movies := page.Results
	if len(movies) > s.cfg.DiscoverLimit {
		movies = movies[:s.cfg.DiscoverLimit]
	}

	s.logger.Debug().Int64("genre_id", genreID).Int("movies", len(movies)).Msg("genre listing fetched")
	return s.enricher.Enrich(ctx, enrich.PartialsFromMovies(movies)), nil
}

func containsGenre(genres []tmdb.Genre, id int64) bool {
	for _, g := range genres {
		if g.ID == id {
			return true
		}
	}
	return false
}

// TopRated returns an enriched page of the top-rated listing. page is
// clamped to at least 1.
func (s *Service) TopRated(ctx context.Context, page int) (*TopRatedPage, error) {
	page = ClampPage(page)

	result, err := s.api.TopRated(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("top rated page %d: %w", page, err)
	}

	out := &TopRatedPage{
		Page:       page,
		TotalPages: result.TotalPages,
		Movies:     s.enricher.Enrich(ctx, enrich.PartialsFromMovies(result.Results)),
	}
	if page > 1 {
		prev := page - 1
		out.PrevPage = &prev
	}
	if page < result.TotalPages {
		next := page + 1
		out.NextPage = &next
	}
	return out, nil
}

// ClampPage returns page, or 1 when page is below 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
