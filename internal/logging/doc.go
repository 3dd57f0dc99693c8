// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package logging provides centralized zerolog-based structured logging for Cinematch.
//
// A single global zerolog logger is configured once at startup and shared by
// every component. JSON output is the default; console output is available
// for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Int("entries", n).Msg("Catalog loaded")
//	logging.Error().Err(err).Msg("TMDB request failed")
//
//	// Request-scoped logging (request_id added by the API middleware)
//	logging.Ctx(ctx).Debug().Str("title", title).Msg("Resolving")
//
// # Component Loggers
//
//	logger := logging.WithComponent("tmdb")
//	logger.Warn().Int("status", 429).Msg("Rate limited")
//
// # Suture Integration
//
// NewSlogLogger adapts the zerolog logger to log/slog for sutureslog.
//
// # Redaction
//
// TMDB takes its API key as a query parameter. Any URL that is logged must
// pass through RedactURL first.
//
// # Configuration
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
package logging
