// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/cinematch/internal/middleware"
)

func TestRouter_RequestIDPropagation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "trace-123" {
		t.Errorf("response X-Request-ID = %q, want trace-123", got)
	}
	if !strings.Contains(rec.Body.String(), `"request_id":"trace-123"`) {
		t.Errorf("body %s does not carry the request id", rec.Body.String())
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeNotFound {
		t.Errorf("error = %+v, want NOT_FOUND envelope", resp.Error)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/enrich", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != "METHOD_NOT_ALLOWED" {
		t.Errorf("error = %+v, want METHOD_NOT_ALLOWED", resp.Error)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	env.do(t, http.MethodGet, "/api/v1/movies", nil)

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cinematch_api_requests_total") {
		t.Error("metrics output missing cinematch_api_requests_total")
	}
}

func TestRouter_PanicRecovered(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, func(d *Dependencies) {
		d.BreakerState = func() string { panic("boom") }
	})

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 after recovered panic", rec.Code)
	}
}
