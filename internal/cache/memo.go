// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import "sync"

// Memo is an append-only memoization table. Once a key is stored its value
// never changes and is never evicted.
type Memo[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// NewMemo creates an empty memo.
func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{entries: make(map[string]V)}
}

// Get returns the value stored under key.
func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	return v, ok
}

// Store records value under key unless key is already present, and returns
// the value that is now stored.
func (m *Memo[V]) Store(key string, value V) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.entries[key]; ok {
		return existing
	}
	m.entries[key] = value
	return value
}

// Len returns the number of memoized keys.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
