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

	"github.com/tomtom215/cinematch/internal/tmdb"
)

type fakeRefresher struct {
	calls atomic.Int32
	err   error
}

func (f *fakeRefresher) RefreshGenres(context.Context) ([]tmdb.Genre, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return []tmdb.Genre{{ID: 28, Name: "Action"}}, nil
}

func TestGenreRefreshService_Interface(t *testing.T) {
	var _ suture.Service = (*GenreRefreshService)(nil)
}

func TestNewGenreRefreshService_DefaultInterval(t *testing.T) {
	svc := NewGenreRefreshService(&fakeRefresher{}, 0, zerolog.New(io.Discard))
	if svc.interval != time.Hour {
		t.Errorf("interval = %v, want 1h", svc.interval)
	}
	if svc.String() != "genre-refresh-service" {
		t.Errorf("String() = %q, want genre-refresh-service", svc.String())
	}
}

func TestGenreRefreshService_Serve(t *testing.T) {
	t.Run("refreshes at startup and on every tick", func(t *testing.T) {
		r := &fakeRefresher{}
		svc := NewGenreRefreshService(r, 10*time.Millisecond, zerolog.New(io.Discard))

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		err := svc.Serve(ctx)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
		}
		if got := r.calls.Load(); got < 3 {
			t.Errorf("refresh calls = %d, want >= 3", got)
		}
	})

	t.Run("transient failures keep the loop running", func(t *testing.T) {
		r := &fakeRefresher{err: errors.New("connection reset")}
		svc := NewGenreRefreshService(r, 10*time.Millisecond, zerolog.New(io.Discard))

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
		defer cancel()

		if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
		}
		if got := r.calls.Load(); got < 2 {
			t.Errorf("refresh calls = %d, want >= 2", got)
		}
	})

	t.Run("missing API key stops without restart", func(t *testing.T) {
		r := &fakeRefresher{err: tmdb.ErrMissingAPIKey}
		svc := NewGenreRefreshService(r, 10*time.Millisecond, zerolog.New(io.Discard))

		err := svc.Serve(context.Background())
		if !errors.Is(err, suture.ErrDoNotRestart) {
			t.Errorf("Serve() error = %v, want suture.ErrDoNotRestart", err)
		}
		if got := r.calls.Load(); got != 1 {
			t.Errorf("refresh calls = %d, want 1", got)
		}
	})
}
