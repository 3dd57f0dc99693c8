// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/cinematch/internal/browse"
	"github.com/tomtom215/cinematch/internal/tmdb"
)

// ErrRequestBodyTooLarge is returned when a request body exceeds maxBodyBytes.
var ErrRequestBodyTooLarge = errors.New("request body too large")

// writeUpstreamError maps a browse or TMDB failure onto the error envelope.
func writeUpstreamError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, browse.ErrUnknownGenre):
		rw.NotFound("Unknown genre")
	case errors.Is(err, tmdb.ErrMissingAPIKey):
		rw.ServiceUnavailable("TMDB API key is not configured")
	case errors.Is(err, tmdb.ErrCircuitOpen):
		rw.ServiceUnavailable("TMDB is temporarily unavailable, retry later")
	case errors.Is(err, context.Canceled):
		// 499 follows the nginx convention for a disconnected client.
		rw.Error(499, "CLIENT_CLOSED_REQUEST", "Request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		rw.Error(http.StatusGatewayTimeout, ErrCodeExternalServiceFail, "TMDB request timed out")
	default:
		rw.ExternalServiceError("tmdb", err)
	}
}
