// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package browse

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/enrich"
	"github.com/tomtom215/cinematch/internal/tmdb"
)

type fakeAPI struct {
	genreCalls   atomic.Int32
	genreErrs    []error // returned by successive Genres calls, then success
	discover     tmdb.DiscoverParams
	discoverErr  error
	discoverSize int
	topRatedPage int
	totalPages   int
}

func (f *fakeAPI) SearchMovie(context.Context, string) ([]tmdb.Movie, error) { return nil, nil }

func (f *fakeAPI) ExternalIDs(context.Context, int64) (*tmdb.ExternalIDs, error) {
	return &tmdb.ExternalIDs{}, nil
}

func (f *fakeAPI) Genres(context.Context) ([]tmdb.Genre, error) {
	n := int(f.genreCalls.Add(1))
	if n <= len(f.genreErrs) {
		return nil, f.genreErrs[n-1]
	}
	return []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}}, nil
}

func (f *fakeAPI) Discover(_ context.Context, p tmdb.DiscoverParams) (*tmdb.MoviePage, error) {
	f.discover = p
	if f.discoverErr != nil {
		return nil, f.discoverErr
	}
	return &tmdb.MoviePage{Page: 1, Results: movies(f.discoverSize), TotalPages: 1}, nil
}

func (f *fakeAPI) TopRated(_ context.Context, page int) (*tmdb.MoviePage, error) {
	f.topRatedPage = page
	return &tmdb.MoviePage{Page: page, Results: movies(20), TotalPages: f.totalPages}, nil
}

func movies(n int) []tmdb.Movie {
	out := make([]tmdb.Movie, n)
	for i := range out {
		out[i] = tmdb.Movie{ID: int64(i + 1), Title: fmt.Sprintf("Movie %d", i+1), VoteAverage: 7}
	}
	return out
}

// echoEnricher converts partial items without network access.
type echoEnricher struct {
	lastItems []enrich.Item
}

func (e *echoEnricher) Enrich(_ context.Context, items []enrich.Item) []enrich.Record {
	e.lastItems = items
	out := make([]enrich.Record, len(items))
	for i, it := range items {
		out[i] = enrich.Record{Title: it.ItemTitle()}
	}
	return out
}

func testBrowseConfig() *config.BrowseConfig {
	return &config.BrowseConfig{
		DiscoverLimit: 10,
		MinVoteCount:  300,
		SortBy:        "popularity.desc",
		GenreCacheTTL: time.Hour,
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	}
}

func newTestService(t *testing.T, api tmdb.API, enricher Enricher) *Service {
	t.Helper()
	s := New(api, enricher, testBrowseConfig(), zerolog.Nop())
	t.Cleanup(s.Close)
	return s
}

func TestClampPage(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {2, 2}, {500, 500},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.in); got != tt.want {
			t.Errorf("ClampPage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGenres_CachedAndRetried(t *testing.T) {
	api := &fakeAPI{genreErrs: []error{errors.New("connection reset")}}
	s := newTestService(t, api, &echoEnricher{})

	genres, err := s.Genres(context.Background())
	if err != nil {
		t.Fatalf("Genres() error = %v", err)
	}
	if len(genres) != 2 {
		t.Errorf("len(genres) = %d, want 2", len(genres))
	}
	if api.genreCalls.Load() != 2 {
		t.Errorf("genre calls = %d, want 2 (one retry)", api.genreCalls.Load())
	}

	if _, err := s.Genres(context.Background()); err != nil {
		t.Fatalf("cached Genres() error = %v", err)
	}
	if api.genreCalls.Load() != 2 {
		t.Errorf("genre calls = %d, want cached result", api.genreCalls.Load())
	}

	want := CacheStats{Entries: 1, Hits: 1, Misses: 1, HitRate: 50}
	if got := s.GenreCacheStats(); got != want {
		t.Errorf("GenreCacheStats() = %+v, want %+v", got, want)
	}
}

func TestRefreshGenres_BypassesCache(t *testing.T) {
	api := &fakeAPI{}
	s := newTestService(t, api, &echoEnricher{})

	if _, err := s.Genres(context.Background()); err != nil {
		t.Fatalf("Genres() error = %v", err)
	}
	if _, err := s.RefreshGenres(context.Background()); err != nil {
		t.Fatalf("RefreshGenres() error = %v", err)
	}
	if api.genreCalls.Load() != 2 {
		t.Errorf("genre calls = %d, want 2", api.genreCalls.Load())
	}
	if _, err := s.Genres(context.Background()); err != nil {
		t.Fatalf("Genres() error = %v", err)
	}
	if api.genreCalls.Load() != 2 {
		t.Errorf("genre calls = %d, want refreshed result served from cache", api.genreCalls.Load())
	}
}

func TestGenres_NoRetryOnUnauthorized(t *testing.T) {
	unauthorized := &tmdb.APIError{Endpoint: "genres", StatusCode: 401}
	api := &fakeAPI{genreErrs: []error{unauthorized, unauthorized, unauthorized}}
	s := newTestService(t, api, &echoEnricher{})

	_, err := s.Genres(context.Background())
	if !errors.Is(err, tmdb.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
	if api.genreCalls.Load() != 1 {
		t.Errorf("genre calls = %d, want 1", api.genreCalls.Load())
	}
}

func TestGenres_GivesUpAfterAttempts(t *testing.T) {
	boom := errors.New("boom")
	api := &fakeAPI{genreErrs: []error{boom, boom, boom, boom}}
	s := newTestService(t, api, &echoEnricher{})

	if _, err := s.Genres(context.Background()); !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
	if api.genreCalls.Load() != 3 {
		t.Errorf("genre calls = %d, want 3", api.genreCalls.Load())
	}
}

func TestByGenre(t *testing.T) {
	api := &fakeAPI{discoverSize: 20}
	enricher := &echoEnricher{}
	s := newTestService(t, api, enricher)

	records, err := s.ByGenre(context.Background(), 28)
	if err != nil {
		t.Fatalf("ByGenre() error = %v", err)
	}
	if len(records) != 10 {
		t.Errorf("len(records) = %d, want 10", len(records))
	}
	want := tmdb.DiscoverParams{GenreID: 28, SortBy: "popularity.desc", MinVoteCount: 300}
	if api.discover != want {
		t.Errorf("discover params = %+v, want %+v", api.discover, want)
	}
	for i, it := range enricher.lastItems {
		if it.Kind() != enrich.KindPartial {
			t.Errorf("item %d kind = %s, want partial", i, it.Kind())
		}
	}
}

func TestByGenre_Errors(t *testing.T) {
	api := &fakeAPI{}
	s := newTestService(t, api, &echoEnricher{})

	if _, err := s.ByGenre(context.Background(), 9999); !errors.Is(err, ErrUnknownGenre) {
		t.Errorf("unknown genre error = %v, want ErrUnknownGenre", err)
	}

	api.discoverErr = errors.New("timeout")
	if _, err := s.ByGenre(context.Background(), 28); err == nil {
		t.Error("expected discover error to propagate")
	}
}

func TestTopRated_Pagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		total    int
		wantPage int
		wantPrev *int
		wantNext *int
	}{
		{"first page", 1, 5, 1, nil, intPtr(2)},
		{"clamped zero", 0, 5, 1, nil, intPtr(2)},
		{"clamped negative", -3, 5, 1, nil, intPtr(2)},
		{"middle", 3, 5, 3, intPtr(2), intPtr(4)},
		{"last", 5, 5, 5, intPtr(4), nil},
		{"past end", 9, 5, 9, intPtr(8), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{totalPages: tt.total}
			s := newTestService(t, api, &echoEnricher{})

			got, err := s.TopRated(context.Background(), tt.page)
			if err != nil {
				t.Fatalf("TopRated() error = %v", err)
			}
			if got.Page != tt.wantPage || api.topRatedPage != tt.wantPage {
				t.Errorf("Page = %d (requested %d), want %d", got.Page, api.topRatedPage, tt.wantPage)
			}
			if !equalIntPtr(got.PrevPage, tt.wantPrev) {
				t.Errorf("PrevPage = %v, want %v", deref(got.PrevPage), deref(tt.wantPrev))
			}
			if !equalIntPtr(got.NextPage, tt.wantNext) {
				t.Errorf("NextPage = %v, want %v", deref(got.NextPage), deref(tt.wantNext))
			}
			if len(got.Movies) != 20 {
				t.Errorf("len(Movies) = %d, want 20", len(got.Movies))
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
