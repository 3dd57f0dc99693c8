// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package enrich

import (
	"fmt"
	"net/url"
)

// Links are the outbound links shown with a record.
type Links struct {
	Detail  string `json:"detail"`
	Trailer string `json:"trailer"`
	Watch   string `json:"watch"`
}

// noLink marks a link that cannot be built.
const noLink = "#"

// BuildLinks derives outbound links from a title and optional ids.
//   - Detail: TMDB movie page, or "#" without a TMDB id
//   - Trailer: IMDb title page, or an IMDb search for the title
//   - Watch: web search for "watch <title> online free"
func BuildLinks(title string, tmdbID *int64, imdbID *string) Links {
	links := Links{Detail: noLink}

	if tmdbID != nil {
		links.Detail = fmt.Sprintf("https://www.themoviedb.org/movie/%d", *tmdbID)
	}

	if imdbID != nil && *imdbID != "" {
		links.Trailer = fmt.Sprintf("https://www.imdb.com/title/%s/", url.PathEscape(*imdbID))
	} else {
		links.Trailer = "https://www.imdb.com/find?q=" + url.QueryEscape(title)
	}

	// QueryEscape encodes spaces as '+'.
	links.Watch = "https://www.google.com/search?q=watch+" + url.QueryEscape(title) + "+online+free"

	return links
}
