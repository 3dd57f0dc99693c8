// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package enrich

import "testing"

func TestBuildLinks(t *testing.T) {
	id := int64(603)
	imdb := "tt0133093"
	empty := ""

	tests := []struct {
		name   string
		title  string
		tmdbID *int64
		imdbID *string
		want   Links
	}{
		{
			name:   "all ids",
			title:  "The Matrix",
			tmdbID: &id,
			imdbID: &imdb,
			want: Links{
				Detail:  "https://www.themoviedb.org/movie/603",
				Trailer: "https://www.imdb.com/title/tt0133093/",
				Watch:   "https://www.google.com/search?q=watch+The+Matrix+online+free",
			},
		},
		{
			name:  "no ids",
			title: "The Matrix",
			want: Links{
				Detail:  "#",
				Trailer: "https://www.imdb.com/find?q=The+Matrix",
				Watch:   "https://www.google.com/search?q=watch+The+Matrix+online+free",
			},
		},
		{
			name:   "empty imdb id falls back to search",
			title:  "Amélie & Co",
			tmdbID: &id,
			imdbID: &empty,
			want: Links{
				Detail:  "https://www.themoviedb.org/movie/603",
				Trailer: "https://www.imdb.com/find?q=Am%C3%A9lie+%26+Co",
				Watch:   "https://www.google.com/search?q=watch+Am%C3%A9lie+%26+Co+online+free",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildLinks(tt.title, tt.tmdbID, tt.imdbID); got != tt.want {
				t.Errorf("BuildLinks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
