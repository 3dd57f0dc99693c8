// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package logging

import (
	"strings"
	"testing"
)

func TestRedactURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		mustContain string
		mustNot     string
	}{
		{
			name:        "api key masked",
			input:       "https://api.themoviedb.org/3/search/movie?api_key=secret123&query=Alien",
			mustContain: "api_key=REDACTED",
			mustNot:     "secret123",
		},
		{
			name:        "query preserved",
			input:       "https://api.themoviedb.org/3/search/movie?api_key=secret123&query=Alien",
			mustContain: "query=Alien",
		},
		{
			name:        "no credentials untouched",
			input:       "https://api.themoviedb.org/3/genre/movie/list",
			mustContain: "/3/genre/movie/list",
		},
		{
			name:        "unparseable",
			input:       "://bad\x7f",
			mustContain: "[unparseable-url]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RedactURL(tt.input)
			if !strings.Contains(got, tt.mustContain) {
				t.Errorf("RedactURL(%q) = %q, want it to contain %q", tt.input, got, tt.mustContain)
			}
			if tt.mustNot != "" && strings.Contains(got, tt.mustNot) {
				t.Errorf("RedactURL(%q) = %q, must not contain %q", tt.input, got, tt.mustNot)
			}
		})
	}
}
