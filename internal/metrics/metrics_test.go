// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommend(t *testing.T) {
	hitBefore := testutil.ToFloat64(RecommendRequests.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(RecommendRequests.WithLabelValues("not_found"))

	RecordRecommend(true, time.Millisecond)
	RecordRecommend(false, time.Millisecond)
	RecordRecommend(true, time.Millisecond)

	if got := testutil.ToFloat64(RecommendRequests.WithLabelValues("hit")) - hitBefore; got != 2 {
		t.Errorf("hit delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(RecommendRequests.WithLabelValues("not_found")) - missBefore; got != 1 {
		t.Errorf("not_found delta = %v, want 1", got)
	}
}

func TestRecordEnrichItem(t *testing.T) {
	before := testutil.ToFloat64(EnrichItems.WithLabelValues("unresolved", "degraded"))

	RecordEnrichItem("unresolved", true)

	if got := testutil.ToFloat64(EnrichItems.WithLabelValues("unresolved", "degraded")) - before; got != 1 {
		t.Errorf("degraded delta = %v, want 1", got)
	}
}

func TestRecordTMDBRequest(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		statusCode int
		wantStatus string
	}{
		{"ok", "search_movie", 200, "200"},
		{"not found", "external_ids", 404, "404"},
		{"transport error", "search_movie", 0, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(TMDBRequests.WithLabelValues(tt.endpoint, tt.wantStatus))
			RecordTMDBRequest(tt.endpoint, tt.statusCode, 50*time.Millisecond)
			after := testutil.ToFloat64(TMDBRequests.WithLabelValues(tt.endpoint, tt.wantStatus))
			if after-before != 1 {
				t.Errorf("status %s delta = %v, want 1", tt.wantStatus, after-before)
			}
		})
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)

	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 1 {
		t.Errorf("active delta = %v, want 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))

	RecordAPIRequest("GET", "/api/v1/recommendations", "200", 10*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))
	if after-before != 1 {
		t.Errorf("api request delta = %v, want 1", after-before)
	}
}
