// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Engine serves top-K similarity lookups. It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
	matrix  *catalog.Matrix

	requestCount  atomic.Int64
	notFoundCount atomic.Int64
}

// NewEngine creates an engine over a loaded dataset.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(ds *catalog.Dataset, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if ds == nil || ds.Catalog == nil || ds.Matrix == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := catalog.Validate(ds.Catalog, ds.Matrix); err != nil {
		return nil, err
	}

	return &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: ds.Catalog,
		matrix:  ds.Matrix,
	}, nil
}

// Recommend returns up to K titles most similar to title. An unknown title
// yields an empty, non-nil slice.
func (e *Engine) Recommend(title string) []string {
	neighbors, err := e.Neighbors(title)
	if err != nil {
		return []string{}
	}
	titles := make([]string, len(neighbors))
	for i, n := range neighbors {
		titles[i] = n.Title
	}
	return titles
}

// Neighbors returns up to K scored neighbors of title, or ErrNotFound.
func (e *Engine) Neighbors(title string) ([]Neighbor, error) {
	start := time.Now()
	e.requestCount.Add(1)

	entry, ok := e.catalog.Lookup(title)
	if !ok {
		e.notFoundCount.Add(1)
		metrics.RecordRecommend(false, time.Since(start))
		e.logger.Debug().Str("title", title).Msg("title not in catalog")
		return []Neighbor{}, ErrNotFound
	}

	ranked := e.rank(entry.Index)

	neighbors := make([]Neighbor, len(ranked))
	for i, idx := range ranked {
		other, _ := e.catalog.At(idx)
		neighbors[i] = Neighbor{Title: other.Title, Index: idx, Score: e.matrix.Row(entry.Index)[idx]}
	}

	metrics.RecordRecommend(true, time.Since(start))
	e.logger.Debug().
		Str("title", title).
		Int("index", entry.Index).
		Int("results", len(neighbors)).
		Dur("duration", time.Since(start)).
		Msg("recommendation served")

	return neighbors, nil
}

// rank orders every column except self by score descending, ascending index
// on ties, and returns the first K column indices. Columns titled like the
// query, and repeats of an already chosen title, are skipped.
func (e *Engine) rank(self int) []int {
	row := e.matrix.Row(self)

	candidates := make([]int, 0, len(row)-1)
	for idx := range row {
		if idx != self {
			candidates = append(candidates, idx)
		}
	}

	sort.Slice(candidates, func(a, b int) bool {
		sa, sb := row[candidates[a]], row[candidates[b]]
		if sa != sb {
			return sa > sb
		}
		return candidates[a] < candidates[b]
	})

	query := e.titleAt(self)
	seen := map[string]struct{}{query: {}}
	picked := make([]int, 0, min(e.config.K, len(candidates)))
	for _, idx := range candidates {
		title := e.titleAt(idx)
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		picked = append(picked, idx)
		if len(picked) == e.config.K {
			break
		}
	}
	return picked
}

func (e *Engine) titleAt(idx int) string {
	entry, _ := e.catalog.At(idx)
	return entry.Title
}

// Catalog returns the catalog the engine serves.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Stats returns engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:        e.requestCount.Load(),
		NotFound:        e.notFoundCount.Load(),
		CatalogSize:     e.catalog.Len(),
		DuplicateTitles: e.catalog.Duplicates(),
		K:               e.config.K,
	}
}
