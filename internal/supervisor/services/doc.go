// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package services provides suture.Service wrappers for Cinematch components.

  - HTTPServerService: runs *http.Server with graceful shutdown
  - GenreRefreshService: reloads the TMDB genre list ahead of cache expiry
  - StoreGCService: periodic BadgerDB value log GC for the xref store

Each wrapper blocks in Serve until its context is canceled and implements
fmt.Stringer so supervisor events name the service.
*/
package services
