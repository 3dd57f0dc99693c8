// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package enrich

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/tmdb"
)

// Kind discriminates Item variants on the wire.
type Kind string

// Item kinds.
const (
	KindUnresolved Kind = "unresolved"
	KindPartial    Kind = "partial"
)

// ErrUnknownKind is returned when decoding an item with an unknown kind.
var ErrUnknownKind = errors.New("unknown item kind")

// Item is one enrichment input: Unresolved or Partial.
type Item interface {
	Kind() Kind
	ItemTitle() string
	wire() wireItem
}

// Unresolved is a bare title that must be searched on TMDB.
type Unresolved struct {
	Title string
}

// Partial is a TMDB listing entry that already carries its id, poster path
// and rating.
type Partial struct {
	Title       string
	ID          int64
	PosterPath  string
	VoteAverage float64
}

// Kind implements Item.
func (Unresolved) Kind() Kind { return KindUnresolved }

// ItemTitle implements Item.
func (u Unresolved) ItemTitle() string { return u.Title }

func (u Unresolved) wire() wireItem {
	return wireItem{Kind: KindUnresolved, Title: u.Title}
}

// Kind implements Item.
func (Partial) Kind() Kind { return KindPartial }

// ItemTitle implements Item.
func (p Partial) ItemTitle() string { return p.Title }

func (p Partial) wire() wireItem {
	return wireItem{Kind: KindPartial, Title: p.Title, ID: p.ID, PosterPath: p.PosterPath, VoteAverage: p.VoteAverage}
}

// PartialFromMovie converts a TMDB listing entry.
func PartialFromMovie(m tmdb.Movie) Partial {
	return Partial{Title: m.Title, ID: m.ID, PosterPath: m.PosterPath, VoteAverage: m.VoteAverage}
}

// PartialsFromMovies converts a TMDB listing page.
func PartialsFromMovies(movies []tmdb.Movie) []Item {
	items := make([]Item, len(movies))
	for i, m := range movies {
		items[i] = PartialFromMovie(m)
	}
	return items
}

// Titles wraps bare titles as Unresolved items.
func Titles(titles []string) []Item {
	items := make([]Item, len(titles))
	for i, t := range titles {
		items[i] = Unresolved{Title: t}
	}
	return items
}

// wireItem is the JSON form of an Item.
type wireItem struct {
	Kind        Kind    `json:"kind"`
	Title       string  `json:"title"`
	ID          int64   `json:"id,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

func (w wireItem) item() (Item, error) {
	switch w.Kind {
	case KindUnresolved:
		return Unresolved{Title: w.Title}, nil
	case KindPartial:
		return Partial{Title: w.Title, ID: w.ID, PosterPath: w.PosterPath, VoteAverage: w.VoteAverage}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, w.Kind)
	}
}

// Items is a list of Item with a tagged JSON encoding:
//
//	[{"kind":"unresolved","title":"Heat"},
//	 {"kind":"partial","title":"Beta","id":42,"poster_path":"/x.jpg","vote_average":7.5}]
type Items []Item

// MarshalJSON implements json.Marshaler.
func (items Items) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireItems(items))
}

// UnmarshalJSON implements json.Unmarshaler.
func (items *Items) UnmarshalJSON(data []byte) error {
	var raw []wireItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Items, len(raw))
	for i, w := range raw {
		it, err := w.item()
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = it
	}
	*items = out
	return nil
}

func wireItems(items []Item) []wireItem {
	out := make([]wireItem, len(items))
	for i, it := range items {
		out[i] = it.wire()
	}
	return out
}
