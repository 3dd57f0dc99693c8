// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"sync"
	"testing"
)

func TestMemo_StoreKeepsFirstValue(t *testing.T) {
	m := NewMemo[[]string]()

	if _, ok := m.Get("k"); ok {
		t.Fatal("empty memo should miss")
	}

	got := m.Store("k", []string{"first"})
	if got[0] != "first" {
		t.Errorf("Store() = %v, want [first]", got)
	}

	got = m.Store("k", []string{"second"})
	if got[0] != "first" {
		t.Errorf("second Store() = %v, want existing [first]", got)
	}

	v, ok := m.Get("k")
	if !ok || v[0] != "first" {
		t.Errorf("Get() = %v, %v, want [first], true", v, ok)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestMemo_ConcurrentStore(t *testing.T) {
	m := NewMemo[int]()

	var wg sync.WaitGroup
	results := make([]int, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.Store("shared", i)
		}(i)
	}
	wg.Wait()

	winner, _ := m.Get("shared")
	for i, r := range results {
		if r != winner {
			t.Errorf("results[%d] = %d, want stored winner %d", i, r, winner)
		}
	}
}
