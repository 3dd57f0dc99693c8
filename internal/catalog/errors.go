// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import "errors"

var (
	// ErrEmptyCatalog is returned when the catalog artifact holds no entries.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrDimensionMismatch is returned when the similarity matrix shape does
	// not match the catalog length.
	ErrDimensionMismatch = errors.New("similarity matrix dimensions do not match catalog")

	// ErrUnsupportedFormat is returned for artifact extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported artifact format")

	// ErrInvalidMatrix is returned for malformed matrix data.
	ErrInvalidMatrix = errors.New("invalid similarity matrix")
)
