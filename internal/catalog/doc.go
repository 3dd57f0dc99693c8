// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog loads the precomputed movie catalog and similarity matrix.
//
// Both artifacts are produced offline and loaded once at process start. After
// Load returns they are immutable and safe for concurrent reads without
// locking.
//
// # Catalog
//
// The catalog is an ordered list of titles. A title's position is its Index,
// the join key into the similarity matrix. Supported formats, chosen by file
// extension (an optional trailing .gz enables gzip decompression):
//
//	.json  ["Avatar", "Spectre"]  or  [{"title": "Avatar"}, {"title": "Spectre"}]
//	.csv   header row with a "title" column; other columns are ignored
//
// Duplicate titles are kept (indices stay aligned with the matrix) but
// lookups by title resolve to the first, lowest-index entry.
//
// # Similarity Matrix
//
// An N x N matrix of float32 scores; row i holds entry i's similarity to every
// entry including itself.
//
//	.json  [[1.0, 0.2], [0.2, 1.0]]
//	.bin   "SIMM" | uint32 rows | uint32 cols | rows*cols float32, little-endian, row-major
//
// # Validation
//
// Load rejects artifacts whose matrix is not N x N for a catalog of N
// entries, returning ErrDimensionMismatch.
package catalog
