// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"strings"
)

// Entry is a single catalog title and its position in the matrix.
type Entry struct {
	Title string `json:"title"`
	Index int    `json:"index"`
}

// Catalog is an immutable, ordered list of titles.
type Catalog struct {
	entries    []Entry
	byTitle    map[string]int
	duplicates int
}

// New builds a catalog from titles in index order.
func New(titles []string) (*Catalog, error) {
	if len(titles) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		entries: make([]Entry, len(titles)),
		byTitle: make(map[string]int, len(titles)),
	}
	for i, title := range titles {
		c.entries[i] = Entry{Title: title, Index: i}
		if _, exists := c.byTitle[title]; exists {
			// First occurrence wins; later duplicates stay addressable by index only.
			c.duplicates++
			continue
		}
		c.byTitle[title] = i
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Duplicates returns how many entries share a title with an earlier entry.
func (c *Catalog) Duplicates() int {
	return c.duplicates
}

// Lookup resolves a title by exact match to its lowest-index entry.
func (c *Catalog) Lookup(title string) (Entry, bool) {
	i, ok := c.byTitle[title]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// At returns the entry at index i.
func (c *Catalog) At(i int) (Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Search returns entries whose title contains query (case-insensitive), in
// index order, paginated by offset and limit, plus the total match count.
// An empty query matches everything.
func (c *Catalog) Search(query string, offset, limit int) ([]Entry, int) {
	needle := strings.ToLower(strings.TrimSpace(query))

	matches := make([]Entry, 0)
	total := 0
	for _, e := range c.entries {
		if needle != "" && !strings.Contains(strings.ToLower(e.Title), needle) {
			continue
		}
		if total >= offset && len(matches) < limit {
			matches = append(matches, e)
		}
		total++
	}
	return matches, total
}
