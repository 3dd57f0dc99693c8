// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cinematch/internal/enrich"
)

// Enrich handles POST /api/v1/enrich
// Resolves a batch of tagged items to display records, one per item in
// input order. Items that cannot be resolved come back degraded, so the
// endpoint never fails on upstream errors.
func (h *Handler) Enrich(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req EnrichRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		switch {
		case errors.Is(err, ErrRequestBodyTooLarge):
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "Request body too large")
		case errors.Is(err, enrich.ErrUnknownKind):
			rw.BadRequest(err.Error())
		default:
			rw.BadRequest("Invalid JSON body")
		}
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		writeValidationError(rw, apiErr)
		return
	}

	rw.Success(h.deps.Enricher.Enrich(r.Context(), req.Items))
}
