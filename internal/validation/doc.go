// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package validation provides request validation using go-playground/validator v10.

A single validator instance is shared process-wide; it caches struct
metadata after first use. Field names in messages come from the json tag, so
errors refer to the names clients send ("limit", not "Limit").

Custom tags:

  - notblank: string must contain a non-whitespace character

Failures convert to the API's VALIDATION_ERROR shape via ToAPIError:

	type RecommendRequest struct {
	    Title string `json:"title" validate:"required,notblank,max=500"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
	    return
	}
*/
package validation
