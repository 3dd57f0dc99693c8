// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

var errMockFailure = errors.New("mock service failure")

// mockService counts starts and fails its first failCount runs.
type mockService struct {
	name      string
	starts    atomic.Int32
	failCount atomic.Int32
}

func newMockService(name string) *mockService {
	return &mockService{name: name}
}

func (m *mockService) SetFailCount(n int) {
	m.failCount.Store(int32(n))
}

func (m *mockService) StartCount() int {
	return int(m.starts.Load())
}

func (m *mockService) Serve(ctx context.Context) error {
	m.starts.Add(1)
	if m.failCount.Add(-1) >= 0 {
		return errMockFailure
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string {
	return m.name
}
