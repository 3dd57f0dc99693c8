// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
)

func newTestEngine(t *testing.T, titles []string, rows [][]float32, k int) *Engine {
	t.Helper()

	c, err := catalog.New(titles)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	m, err := catalog.NewMatrix(rows)
	if err != nil {
		t.Fatalf("catalog.NewMatrix() error = %v", err)
	}
	e, err := NewEngine(&catalog.Dataset{Catalog: c, Matrix: m}, &Config{K: k}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func fourMovieEngine(t *testing.T) *Engine {
	t.Helper()
	return newTestEngine(t,
		[]string{"Alpha", "Beta", "Gamma", "Delta"},
		[][]float32{
			{1.0, 0.9, 0.1, 0.5},
			{0.9, 1.0, 0.3, 0.2},
			{0.1, 0.3, 1.0, 0.8},
			{0.5, 0.2, 0.8, 1.0},
		},
		DefaultK,
	)
}

func TestNewEngine_Validation(t *testing.T) {
	c, _ := catalog.New([]string{"Alpha", "Beta"})
	square, _ := catalog.NewMatrix([][]float32{{1, 0}, {0, 1}})
	wrong, _ := catalog.NewMatrix([][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	tests := []struct {
		name    string
		ds      *catalog.Dataset
		cfg     *Config
		wantErr error
		anyErr  bool
	}{
		{"nil dataset", nil, nil, nil, true},
		{"missing matrix", &catalog.Dataset{Catalog: c}, nil, nil, true},
		{"dimension mismatch", &catalog.Dataset{Catalog: c, Matrix: wrong}, nil, catalog.ErrDimensionMismatch, true},
		{"k zero", &catalog.Dataset{Catalog: c, Matrix: square}, &Config{K: 0}, nil, true},
		{"k too large", &catalog.Dataset{Catalog: c, Matrix: square}, &Config{K: MaxK + 1}, nil, true},
		{"nil config uses default", &catalog.Dataset{Catalog: c, Matrix: square}, nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(tt.ds, tt.cfg, zerolog.Nop())
			if tt.anyErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.Stats().K != DefaultK {
				t.Errorf("K = %d, want %d", e.Stats().K, DefaultK)
			}
		})
	}
}

func TestRecommend(t *testing.T) {
	e := fourMovieEngine(t)

	tests := []struct {
		title string
		want  []string
	}{
		{"Alpha", []string{"Beta", "Delta", "Gamma"}},
		{"Beta", []string{"Alpha", "Gamma", "Delta"}},
		{"Gamma", []string{"Delta", "Beta", "Alpha"}},
		{"Unknown", []string{}},
		{"alpha", []string{}}, // lookup is exact
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := e.Recommend(tt.title)
			if got == nil {
				t.Fatal("Recommend() returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recommend(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestRecommend_SingleEntry(t *testing.T) {
	e := newTestEngine(t, []string{"Alpha"}, [][]float32{{1.0}}, DefaultK)

	got := e.Recommend("Alpha")
	if got == nil || len(got) != 0 {
		t.Errorf("Recommend(Alpha) = %v, want []", got)
	}
}

func TestRecommend_SelfNotMaximum(t *testing.T) {
	// Beta's own score is below its neighbours; self must still be excluded.
	e := newTestEngine(t,
		[]string{"Alpha", "Beta", "Gamma"},
		[][]float32{
			{1.0, 0.4, 0.2},
			{0.9, 0.1, 0.7},
			{0.2, 0.7, 1.0},
		},
		DefaultK,
	)

	got := e.Recommend("Beta")
	want := []string{"Alpha", "Gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(Beta) = %v, want %v", got, want)
	}
}

func TestRecommend_TieBreakByIndex(t *testing.T) {
	e := newTestEngine(t,
		[]string{"A", "B", "C", "D", "E"},
		[][]float32{
			{1, 0.5, 0.5, 0.9, 0.5},
			{0.5, 1, 0, 0, 0},
			{0.5, 0, 1, 0, 0},
			{0.9, 0, 0, 1, 0},
			{0.5, 0, 0, 0, 1},
		},
		3,
	)

	got := e.Recommend("A")
	want := []string{"D", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(A) = %v, want %v", got, want)
	}
}

func TestRecommend_DuplicateTitleUsesFirstRow(t *testing.T) {
	e := newTestEngine(t,
		[]string{"Alpha", "Beta", "Alpha"},
		[][]float32{
			{1, 0.9, 0.1},
			{0.9, 1, 0.2},
			{0.1, 0.2, 1},
		},
		DefaultK,
	)

	neighbors, err := e.Neighbors("Alpha")
	if err != nil {
		t.Fatalf("Neighbors() error = %v", err)
	}
	if len(neighbors) != 1 || neighbors[0].Index != 1 {
		t.Errorf("Neighbors(Alpha) = %+v, want only index 1 from row 0", neighbors)
	}
	if len(neighbors) > 0 && neighbors[0].Score != 0.9 {
		t.Errorf("Score = %v, want 0.9", neighbors[0].Score)
	}
	for _, title := range e.Recommend("Alpha") {
		if title == "Alpha" {
			t.Errorf("Recommend(Alpha) contains the query title: %v", e.Recommend("Alpha"))
		}
	}
	if e.Stats().DuplicateTitles != 1 {
		t.Errorf("DuplicateTitles = %d, want 1", e.Stats().DuplicateTitles)
	}
}

func TestRecommend_RepeatedTitlesReturnedOnce(t *testing.T) {
	e := newTestEngine(t,
		[]string{"Alpha", "Beta", "Beta", "Gamma"},
		[][]float32{
			{1, 0.9, 0.8, 0.7},
			{0.9, 1, 0, 0},
			{0.8, 0, 1, 0},
			{0.7, 0, 0, 1},
		},
		DefaultK,
	)

	got := e.Recommend("Alpha")
	want := []string{"Beta", "Gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(Alpha) = %v, want %v", got, want)
	}
}

func TestNeighbors_NotFound(t *testing.T) {
	e := fourMovieEngine(t)

	got, err := e.Neighbors("Nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Neighbors() = %v, want empty slice", got)
	}
}

// TestRecommend_RandomMatrices checks result size, self exclusion, and
// uniqueness over random catalogs of varying size.
func TestRecommend_RandomMatrices(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 12; n++ {
		titles := make([]string, n)
		rows := make([][]float32, n)
		for i := range titles {
			titles[i] = fmt.Sprintf("Movie %02d", i)
			rows[i] = make([]float32, n)
			for j := range rows[i] {
				rows[i][j] = float32(rng.Intn(5)) / 4
			}
		}
		e := newTestEngine(t, titles, rows, DefaultK)

		wantLen := min(DefaultK, n-1)
		for i, title := range titles {
			neighbors, err := e.Neighbors(title)
			if err != nil {
				t.Fatalf("n=%d Neighbors(%q) error = %v", n, title, err)
			}
			if len(neighbors) != wantLen {
				t.Fatalf("n=%d len = %d, want %d", n, len(neighbors), wantLen)
			}
			seen := make(map[int]bool)
			for k, nb := range neighbors {
				if nb.Index == i {
					t.Errorf("n=%d %q recommended itself", n, title)
				}
				if seen[nb.Index] {
					t.Errorf("n=%d %q duplicate index %d", n, title, nb.Index)
				}
				seen[nb.Index] = true
				if k > 0 {
					prev := neighbors[k-1]
					if prev.Score < nb.Score || (prev.Score == nb.Score && prev.Index > nb.Index) {
						t.Errorf("n=%d %q out of order at %d: %+v before %+v", n, title, k, prev, nb)
					}
				}
			}
		}
	}
}

func TestEngine_ConcurrentAndStats(t *testing.T) {
	e := fourMovieEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				e.Recommend("Alpha")
			} else {
				e.Recommend("Missing")
			}
		}(i)
	}
	wg.Wait()

	stats := e.Stats()
	if stats.Requests != 20 {
		t.Errorf("Requests = %d, want 20", stats.Requests)
	}
	if stats.NotFound != 10 {
		t.Errorf("NotFound = %d, want 10", stats.NotFound)
	}
	if stats.CatalogSize != 4 {
		t.Errorf("CatalogSize = %d, want 4", stats.CatalogSize)
	}
}
