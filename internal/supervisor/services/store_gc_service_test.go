// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/store"
)

type fakeCollector struct {
	calls atomic.Int32
	ratio atomic.Value
	err   error
}

func (f *fakeCollector) RunGC(discardRatio float64) error {
	f.calls.Add(1)
	f.ratio.Store(discardRatio)
	return f.err
}

func TestStoreGCService_Interface(t *testing.T) {
	var _ suture.Service = (*StoreGCService)(nil)
	var _ ValueLogCollector = (*store.XrefStore)(nil)
}

func TestNewStoreGCService_Defaults(t *testing.T) {
	svc := NewStoreGCService(&fakeCollector{}, -time.Second, zerolog.New(io.Discard))
	if svc.interval != 10*time.Minute {
		t.Errorf("interval = %v, want 10m", svc.interval)
	}
	if svc.discardRatio != 0.5 {
		t.Errorf("discardRatio = %v, want 0.5", svc.discardRatio)
	}
}

func TestStoreGCService_Serve(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "runs GC on every tick"},
		{name: "GC errors do not stop the loop", err: errors.New("disk full")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeCollector{err: tt.err}
			svc := NewStoreGCService(c, 10*time.Millisecond, zerolog.New(io.Discard))

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
			}
			if got := c.calls.Load(); got < 2 {
				t.Errorf("GC calls = %d, want >= 2", got)
			}
			if got, _ := c.ratio.Load().(float64); got != 0.5 {
				t.Errorf("discard ratio = %v, want 0.5", got)
			}
		})
	}
}

func TestStoreGCService_WithInMemoryStore(t *testing.T) {
	s, err := store.Open(&config.StoreConfig{Enabled: true, InMemory: true})
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	defer s.Close()

	svc := NewStoreGCService(s, 5*time.Millisecond, zerolog.New(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
	}
}
