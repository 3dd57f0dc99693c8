// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Endpoint labels used for metrics and logs.
const (
	endpointSearch      = "search"
	endpointExternalIDs = "external_ids"
	endpointGenres      = "genres"
	endpointDiscover    = "discover"
	endpointTopRated    = "top_rated"
)

// maxErrorBodySize limits the amount of response body read for error reporting
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads the response body for error reporting (max 64KB).
// Returns the body content or a placeholder message if reading fails.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// API is the subset of TMDB used by Cinematch.
//
// All methods accept a context for cancellation and per-call timeouts and
// are safe for concurrent use.
type API interface {
	SearchMovie(ctx context.Context, query string) ([]Movie, error)
	ExternalIDs(ctx context.Context, movieID int64) (*ExternalIDs, error)
	Genres(ctx context.Context) ([]Genre, error)
	Discover(ctx context.Context, params DiscoverParams) (*MoviePage, error)
	TopRated(ctx context.Context, page int) (*MoviePage, error)
}

// Client handles communication with the TMDB v3 HTTP API.
//
// Features:
//   - Outbound token bucket shared by all callers
//   - Automatic retry on HTTP 429 with exponential backoff and Retry-After
//   - JSON decoding with goccy/go-json
//   - API key redaction in logs
type Client struct {
	baseURL        string
	apiKey         string
	language       string
	client         *http.Client
	limiter        *rate.Limiter // nil when rate limiting is disabled
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewClient creates a TMDB client from configuration.
func NewClient(cfg *config.TMDBConfig) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		maxRetries:     3,
		retryBaseDelay: 500 * time.Millisecond,
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}
	return c
}

// HasAPIKey reports whether an API key is configured.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// doRequestWithRateLimit performs a GET with outbound throttling and
// automatic HTTP 429 handling (exponential backoff, Retry-After honoured).
func (c *Client) doRequestWithRateLimit(ctx context.Context, reqURL string) (*http.Response, error) {
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		} else if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt == c.maxRetries {
			return resp, nil
		}

		_ = resp.Body.Close() // retrying anyway
		metrics.TMDBRateLimited.Inc()

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				delay = time.Duration(seconds) * time.Second
			}
		}

		logging.Debug().Int("attempt", attempt+1).Dur("delay", delay).Msg("TMDB rate limited, backing off")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// unreachable: the final attempt always returns above
	return nil, ErrRateLimited
}

// makeRequest builds the URL for path, performs the request and decodes a
// 200 response into result. Non-200 responses become *APIError.
func (c *Client) makeRequest(ctx context.Context, endpoint, path string, params url.Values, result interface{}) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	start := time.Now()
	resp, err := c.doRequestWithRateLimit(ctx, reqURL)
	if err != nil {
		metrics.RecordTMDBRequest(endpoint, 0, time.Since(start))
		logging.Debug().Err(err).Str("endpoint", endpoint).Str("url", logging.RedactURL(reqURL)).Msg("TMDB request failed")
		return fmt.Errorf("failed to make %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	metrics.RecordTMDBRequest(endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		apiErr := &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.StatusMessage != "" {
			apiErr.Message = eb.StatusMessage
		} else {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		logging.Debug().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("url", logging.RedactURL(reqURL)).
			Msg("TMDB returned non-200 status")
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// SearchMovie searches movies by title and returns the first result page.
func (c *Client) SearchMovie(ctx context.Context, query string) ([]Movie, error) {
	params := url.Values{}
	params.Set("query", query)

	var page MoviePage
	if err := c.makeRequest(ctx, endpointSearch, "/search/movie", params, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// ExternalIDs returns the external cross-references of a movie.
func (c *Client) ExternalIDs(ctx context.Context, movieID int64) (*ExternalIDs, error) {
	var ids ExternalIDs
	path := fmt.Sprintf("/movie/%d/external_ids", movieID)
	if err := c.makeRequest(ctx, endpointExternalIDs, path, nil, &ids); err != nil {
		return nil, err
	}
	return &ids, nil
}

// Genres returns the movie genre list.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var list genreList
	if err := c.makeRequest(ctx, endpointGenres, "/genre/movie/list", nil, &list); err != nil {
		return nil, err
	}
	return list.Genres, nil
}

// Discover returns one page of movies matching params.
func (c *Client) Discover(ctx context.Context, p DiscoverParams) (*MoviePage, error) {
	params := url.Values{}
	if p.GenreID > 0 {
		params.Set("with_genres", strconv.FormatInt(p.GenreID, 10))
	}
	if p.SortBy != "" {
		params.Set("sort_by", p.SortBy)
	}
	if p.MinVoteCount > 0 {
		params.Set("vote_count.gte", strconv.Itoa(p.MinVoteCount))
	}
	if p.Page > 1 {
		params.Set("page", strconv.Itoa(p.Page))
	}

	var page MoviePage
	if err := c.makeRequest(ctx, endpointDiscover, "/discover/movie", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// TopRated returns one page of the top-rated listing. Pages below 1 are
// requested as page 1.
func (c *Client) TopRated(ctx context.Context, page int) (*MoviePage, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var result MoviePage
	if err := c.makeRequest(ctx, endpointTopRated, "/movie/top_rated", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PosterURL joins an image base, size and poster path. An empty path yields
// placeholder.
func PosterURL(imageBase, size, posterPath, placeholder string) string {
	if posterPath == "" {
		return placeholder
	}
	if !strings.HasPrefix(posterPath, "/") {
		posterPath = "/" + posterPath
	}
	return strings.TrimRight(imageBase, "/") + "/" + size + posterPath
}
