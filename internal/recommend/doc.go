// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend implements item-to-item similarity lookup over a
// precomputed similarity matrix.
//
// # Algorithm
//
// Given a title, the engine:
//
//  1. Resolves the title by exact match to its first catalog entry.
//  2. Reads that entry's matrix row.
//  3. Drops the query's own column explicitly (self-similarity is never
//     assumed to sort first).
//  4. Orders remaining columns by score descending, ties by ascending index.
//  5. Returns the first K titles.
//
// A catalog of N entries therefore yields min(K, N-1) distinct titles, none
// equal to the query entry.
//
// # Determinism
//
// The tie-break on column index makes output identical across runs and
// platforms for the same artifacts.
//
// # Concurrency
//
// The engine holds only immutable data plus atomic counters and is safe for
// concurrent use.
//
// # Usage
//
//	ds, err := catalog.Load(cfg.Catalog.Path, cfg.Catalog.SimilarityPath)
//	engine, err := recommend.NewEngine(ds, &recommend.Config{K: 5}, logging.Logger())
//	titles := engine.Recommend("Avatar")
package recommend
