// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// xrefKeyPrefix namespaces cross-reference keys.
const xrefKeyPrefix = "xref:tmdb:"

// xrefRecord is the stored value.
type xrefRecord struct {
	IMDbID    string    `json:"imdb_id"`
	FetchedAt time.Time `json:"fetched_at"`
}

// XrefStore is a BadgerDB-backed TMDB-to-IMDb id store.
type XrefStore struct {
	db *badger.DB
}

// Open opens the store described by cfg.
func Open(cfg *config.StoreConfig) (*XrefStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open xref store: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("Cross-reference store opened")
	return &XrefStore{db: db}, nil
}

// NewXrefStore wraps an already opened database.
func NewXrefStore(db *badger.DB) *XrefStore {
	return &XrefStore{db: db}
}

func xrefKey(tmdbID int64) []byte {
	return []byte(xrefKeyPrefix + strconv.FormatInt(tmdbID, 10))
}

// GetIMDbID returns the stored IMDb id for tmdbID. found is false when no
// mapping has been stored; an empty id with found true means TMDB has none.
func (s *XrefStore) GetIMDbID(ctx context.Context, tmdbID int64) (imdbID string, found bool, err error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var rec xrefRecord
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(xrefKey(tmdbID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		metrics.XrefStoreLookups.WithLabelValues("miss").Inc()
		return "", false, nil
	case err != nil:
		metrics.XrefStoreLookups.WithLabelValues("error").Inc()
		return "", false, fmt.Errorf("get xref %d: %w", tmdbID, err)
	}

	metrics.XrefStoreLookups.WithLabelValues("hit").Inc()
	return rec.IMDbID, true, nil
}

// PutIMDbID stores the mapping tmdbID -> imdbID, replacing any previous one.
func (s *XrefStore) PutIMDbID(ctx context.Context, tmdbID int64, imdbID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(xrefRecord{IMDbID: imdbID, FetchedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal xref: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(xrefKey(tmdbID), data); err != nil {
			return fmt.Errorf("set xref %d: %w", tmdbID, err)
		}
		return nil
	})
}

// Count returns the number of stored mappings.
func (s *XrefStore) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(xrefKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// maxGCRounds bounds value log rewrites per RunGC call.
const maxGCRounds = 10

// RunGC reclaims value log space, rewriting files while badger finds more
// than discardRatio of a file stale. Nothing to rewrite, or an in-memory
// store, is not an error.
func (s *XrefStore) RunGC(discardRatio float64) error {
	for i := 0; i < maxGCRounds; i++ {
		err := s.db.RunValueLogGC(discardRatio)
		switch {
		case err == nil:
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return nil
		default:
			return fmt.Errorf("xref store gc: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *XrefStore) Close() error {
	return s.db.Close()
}
