// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"strings"
	"testing"
)

type listRequest struct {
	Query  string `json:"q" validate:"max=200"`
	Limit  int    `json:"limit" validate:"min=1,max=500"`
	Offset int    `json:"offset" validate:"min=0"`
}

type titleRequest struct {
	Title string `json:"title" validate:"required,notblank,max=20"`
	Mode  string `json:"mode" validate:"omitempty,oneof=titles enriched"`
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name string
		req  interface{}
	}{
		{"list defaults", &listRequest{Limit: 50}},
		{"list bounds", &listRequest{Query: "star", Limit: 500, Offset: 10000}},
		{"title", &titleRequest{Title: "Heat"}},
		{"title with mode", &titleRequest{Title: "Heat", Mode: "enriched"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(tt.req); err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		req       interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"limit zero", &listRequest{Limit: 0}, "limit", "min", "limit must be at least 1"},
		{"limit too large", &listRequest{Limit: 501}, "limit", "max", "limit must be at most 500"},
		{"negative offset", &listRequest{Limit: 1, Offset: -1}, "offset", "min", "offset must be at least 0"},
		{"missing title", &titleRequest{}, "title", "required", "title is required"},
		{"blank title", &titleRequest{Title: "   "}, "title", "notblank", "title must not be blank"},
		{"long title", &titleRequest{Title: strings.Repeat("x", 21)}, "title", "max", "title must be at most 20 characters"},
		{"bad mode", &titleRequest{Title: "Heat", Mode: "fancy"}, "mode", "oneof", "mode must be one of: titles enriched"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.req)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if len(verr.errors) != 1 {
				t.Fatalf("len(errors) = %d, want 1: %v", len(verr.errors), verr)
			}
			if verr.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", verr.Error(), tt.wantMsg)
			}
			details := verr.ToAPIError().Details
			if details["field"] != tt.wantField {
				t.Errorf("details[field] = %v, want %q", details["field"], tt.wantField)
			}
			if details["tag"] != tt.wantTag {
				t.Errorf("details[tag] = %v, want %q", details["tag"], tt.wantTag)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	verr := ValidateStruct(&listRequest{Limit: 0})
	apiErr := verr.ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "limit must be at least 1" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "limit" {
		t.Errorf("Details[field] = %v, want limit", apiErr.Details["field"])
	}
	if apiErr.Details["param"] != "1" {
		t.Errorf("Details[param] = %v, want 1", apiErr.Details["param"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	verr := ValidateStruct(&listRequest{Limit: 0, Offset: -1})
	apiErr := verr.ToAPIError()

	if !strings.Contains(apiErr.Message, "limit:") || !strings.Contains(apiErr.Message, "offset:") {
		t.Errorf("Message = %q, want both fields listed", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("Details[fields] = %v, want 2 entries", apiErr.Details["fields"])
	}
}

func TestToAPIError_Empty(t *testing.T) {
	verr := &RequestValidationError{}
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if verr.ToAPIError().Message != "Validation failed" {
		t.Errorf("Message = %q", verr.ToAPIError().Message)
	}
}
