// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package enrich turns recommendation titles and partial TMDB listings into
display-ready records with poster, rating, TMDB and IMDb ids and outbound
links.

# Items

Input is a list of Item values, each one of:

  - Unresolved: a bare title; resolved with a TMDB title search.
  - Partial: a TMDB listing entry (discover, top-rated) that already carries
    id, poster path and rating; no search is needed.

# Pipeline

Every item runs independently on a bounded worker pool
(sourcegraph/conc/pool):

 1. Partial items are converted directly.
 2. Unresolved items are searched (SearchTimeout, default 2s). An exact
    case-insensitive title match is preferred, else the first result.
 3. When a TMDB id is known the IMDb id is looked up (ExternalIDsTimeout,
    default 1s), consulting the optional persistent store first.

Failures, timeouts and panics degrade only the item they occur in: the
record keeps its title with a placeholder poster, zero rating and no ids.
Output order always equals input order.

# Memoization

The result of a batch is memoized by the exact item list for the process
lifetime, so repeating a batch makes no network calls. Concurrent identical
batches are coalesced with singleflight.
*/
package enrich
