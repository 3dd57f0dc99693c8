// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package cache provides thread-safe in-memory caches.

Two flavours are provided:

  - Cache: key-value store with per-entry TTL, lazy expiry on Get and a
    background sweep. Used for slowly changing TMDB listings such as the
    genre list.
  - Memo: append-only, never-invalidated store for results that are pure
    functions of their key. Used to memoize enrichment batches for the
    process lifetime.

GenerateKey derives a compact, deterministic key from a method name and a
JSON-serializable parameter value.

# Usage Example

	genres := cache.New(6 * time.Hour)
	defer genres.Close()
	genres.Set("genres", list)
	if v, ok := genres.Get("genres"); ok {
	    list = v.([]tmdb.Genre)
	}

	memo := cache.NewMemo[[]enrich.Record]()
	key := cache.GenerateKey("enrich", items)
	if records, ok := memo.Get(key); ok {
	    return records
	}

# Thread Safety

All types are safe for concurrent use.
*/
package cache
