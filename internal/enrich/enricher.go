// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package enrich

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/tmdb"
)

// XrefStore persists TMDB-to-IMDb id mappings. found with an empty id
// means TMDB is known to have no IMDb id for the movie.
type XrefStore interface {
	GetIMDbID(ctx context.Context, tmdbID int64) (imdbID string, found bool, err error)
	PutIMDbID(ctx context.Context, tmdbID int64, imdbID string) error
}

// Options configures an Enricher.
type Options struct {
	ImageBaseURL       string
	PosterSize         string
	PlaceholderPoster  string
	SearchTimeout      time.Duration
	ExternalIDsTimeout time.Duration

	// Workers bounds concurrent item pipelines. Zero means runtime.NumCPU().
	Workers int

	// BatchTimeout bounds a whole batch once it no longer follows its
	// caller's context. Zero means DefaultBatchTimeout.
	BatchTimeout time.Duration
}

// DefaultBatchTimeout bounds a batch when Options.BatchTimeout is unset.
const DefaultBatchTimeout = 30 * time.Second

// OptionsFromConfig builds Options from application configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ImageBaseURL:       cfg.TMDB.ImageBaseURL,
		PosterSize:         cfg.TMDB.PosterSize,
		PlaceholderPoster:  cfg.TMDB.PlaceholderPoster,
		SearchTimeout:      cfg.TMDB.SearchTimeout,
		ExternalIDsTimeout: cfg.TMDB.ExternalIDsTimeout,
		Workers:            cfg.Enrich.Workers,
		BatchTimeout:       cfg.Enrich.BatchTimeout,
	}
}

// Enricher resolves items against TMDB. It is safe for concurrent use.
type Enricher struct {
	api    tmdb.API
	xref   XrefStore
	opts   Options
	logger zerolog.Logger

	memo  *cache.Memo[[]Record]
	group singleflight.Group
}

// New creates an Enricher. xref may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(api tmdb.API, xref XrefStore, opts Options, logger zerolog.Logger) *Enricher {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.BatchTimeout <= 0 {
		opts.BatchTimeout = DefaultBatchTimeout
	}
	return &Enricher{
		api:    api,
		xref:   xref,
		opts:   opts,
		logger: logger.With().Str("component", "enrich").Logger(),
		memo:   cache.NewMemo[[]Record](),
	}
}

// Enrich returns one record per item, in input order. It never fails:
// items that cannot be resolved come back degraded.
func (e *Enricher) Enrich(ctx context.Context, items []Item) []Record {
	if len(items) == 0 {
		return []Record{}
	}

	key := cache.GenerateKey("enrich", wireItems(items))
	if records, ok := e.memo.Get(key); ok {
		metrics.EnrichCache.WithLabelValues("hit").Inc()
		return cloneRecords(records)
	}

	// The shared batch runs detached from every caller. Each caller stops
	// waiting on its own ctx.
	ch := e.group.DoChan(key, func() (interface{}, error) {
		if records, ok := e.memo.Get(key); ok {
			return records, nil
		}
		batchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.opts.BatchTimeout)
		defer cancel()

		records := e.enrichBatch(batchCtx, items)
		// Batches cut short by the batch timeout are not memoized.
		if batchCtx.Err() != nil {
			return records, nil
		}
		return e.memo.Store(key, records), nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			metrics.EnrichCache.WithLabelValues("shared").Inc()
		} else {
			metrics.EnrichCache.WithLabelValues("miss").Inc()
		}
		return cloneRecords(res.Val.([]Record))

	case <-ctx.Done():
		metrics.EnrichCache.WithLabelValues("abandoned").Inc()
		records := make([]Record, len(items))
		for i, item := range items {
			records[i] = e.degraded(item.ItemTitle())
		}
		return records
	}
}

// CachedBatches returns the number of memoized batches.
func (e *Enricher) CachedBatches() int {
	return e.memo.Len()
}

// enrichBatch runs every item on the worker pool and collects results by
// input index.
func (e *Enricher) enrichBatch(ctx context.Context, items []Item) []Record {
	start := time.Now()
	records := make([]Record, len(items))

	p := pool.New().WithMaxGoroutines(min(e.opts.Workers, len(items)))
	for i, item := range items {
		p.Go(func() {
			records[i] = e.enrichOne(ctx, item)
		})
	}
	p.Wait()

	metrics.EnrichBatchDuration.Observe(time.Since(start).Seconds())
	e.logger.Debug().
		Int("items", len(items)).
		Dur("duration", time.Since(start)).
		Msg("batch enriched")

	return records
}

// enrichOne runs the full pipeline for one item. A panic anywhere in the
// pipeline yields the degraded record for that item.
func (e *Enricher) enrichOne(ctx context.Context, item Item) (rec Record) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("title", item.ItemTitle()).
				Str("panic", fmt.Sprint(r)).
				Msg("enrichment panicked, item degraded")
			rec = e.degraded(item.ItemTitle())
		}
		metrics.RecordEnrichItem(string(item.Kind()), rec.Degraded)
	}()

	switch it := item.(type) {
	case Partial:
		rec = e.fromPartial(it)
	case Unresolved:
		rec = e.resolve(ctx, it)
	default:
		rec = e.degraded(item.ItemTitle())
	}

	if rec.TMDBID != nil {
		rec.IMDbID = e.lookupIMDbID(ctx, *rec.TMDBID)
	}
	rec.Links = BuildLinks(rec.Title, rec.TMDBID, rec.IMDbID)
	return rec
}

func (e *Enricher) fromPartial(p Partial) Record {
	rec := Record{
		Title:     p.Title,
		PosterURL: e.posterURL(p.PosterPath),
		Rating:    p.VoteAverage,
	}
	if p.ID > 0 {
		id := p.ID
		rec.TMDBID = &id
	}
	return rec
}

// resolve searches TMDB for an unresolved title.
func (e *Enricher) resolve(ctx context.Context, u Unresolved) Record {
	searchCtx, cancel := context.WithTimeout(ctx, e.opts.SearchTimeout)
	defer cancel()

	results, err := e.api.SearchMovie(searchCtx, u.Title)
	if err != nil {
		e.logger.Debug().Err(err).Str("title", u.Title).Msg("search failed, item degraded")
		return e.degraded(u.Title)
	}

	match, ok := bestMatch(results, u.Title)
	if !ok {
		e.logger.Debug().Str("title", u.Title).Msg("no search results, item degraded")
		return e.degraded(u.Title)
	}

	id := match.ID
	return Record{
		Title:     u.Title,
		PosterURL: e.posterURL(match.PosterPath),
		Rating:    match.VoteAverage,
		TMDBID:    &id,
	}
}

// bestMatch prefers a case-insensitive exact title match, else the first result.
func bestMatch(results []tmdb.Movie, title string) (tmdb.Movie, bool) {
	if len(results) == 0 {
		return tmdb.Movie{}, false
	}
	for _, m := range results {
		if strings.EqualFold(m.Title, title) {
			return m, true
		}
	}
	return results[0], true
}

// lookupIMDbID is best effort: any failure yields nil.
func (e *Enricher) lookupIMDbID(ctx context.Context, tmdbID int64) *string {
	if e.xref != nil {
		imdbID, found, err := e.xref.GetIMDbID(ctx, tmdbID)
		if err != nil {
			e.logger.Warn().Err(err).Int64("tmdb_id", tmdbID).Msg("xref store read failed")
		} else if found {
			return nonEmpty(imdbID)
		}
	}

	extCtx, cancel := context.WithTimeout(ctx, e.opts.ExternalIDsTimeout)
	defer cancel()

	ids, err := e.api.ExternalIDs(extCtx, tmdbID)
	if err != nil {
		e.logger.Debug().Err(err).Int64("tmdb_id", tmdbID).Msg("external ids lookup failed")
		return nil
	}

	if e.xref != nil {
		if err := e.xref.PutIMDbID(ctx, tmdbID, ids.IMDbID); err != nil {
			e.logger.Warn().Err(err).Int64("tmdb_id", tmdbID).Msg("xref store write failed")
		}
	}
	return nonEmpty(ids.IMDbID)
}

func (e *Enricher) posterURL(path string) string {
	return tmdb.PosterURL(e.opts.ImageBaseURL, e.opts.PosterSize, path, e.opts.PlaceholderPoster)
}

func (e *Enricher) degraded(title string) Record {
	return Record{
		Title:     title,
		PosterURL: e.opts.PlaceholderPoster,
		Links:     BuildLinks(title, nil, nil),
		Degraded:  true,
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// cloneRecords deep-copies records so callers cannot mutate memoized results.
func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	for i := range out {
		if out[i].TMDBID != nil {
			id := *out[i].TMDBID
			out[i].TMDBID = &id
		}
		if out[i].IMDbID != nil {
			imdbID := *out[i].IMDbID
			out[i].IMDbID = &imdbID
		}
	}
	return out
}
