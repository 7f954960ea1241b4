// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDatasetLoad(t *testing.T) {
	tests := []struct {
		name      string
		table     string
		err       error
		wantError float64
	}{
		{"successful load", "test_projects_ok", nil, 0},
		{"failed load", "test_projects_fail", errors.New("no such file"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordDatasetLoad(tt.table, 5*time.Millisecond, tt.err)

			if got := testutil.ToFloat64(DatasetLoadErrors.WithLabelValues(tt.table)); got != tt.wantError {
				t.Errorf("DatasetLoadErrors[%s] = %v, want %v", tt.table, got, tt.wantError)
			}
		})
	}
}

func TestRecordPipelineRun(t *testing.T) {
	before := map[string]float64{}
	for _, o := range []string{OutcomeSuccess, OutcomeEmpty, OutcomeFatal} {
		before[o] = testutil.ToFloat64(PipelineRuns.WithLabelValues(o))
	}

	RecordPipelineRun(OutcomeSuccess, 2*time.Millisecond, 42)
	RecordPipelineRun(OutcomeEmpty, time.Millisecond, 0)
	RecordPipelineRun(OutcomeFatal, time.Millisecond, 0)
	RecordPipelineRun(OutcomeSuccess, time.Millisecond, 3)

	want := map[string]float64{OutcomeSuccess: 2, OutcomeEmpty: 1, OutcomeFatal: 1}
	for o, delta := range want {
		got := testutil.ToFloat64(PipelineRuns.WithLabelValues(o)) - before[o]
		if got != delta {
			t.Errorf("PipelineRuns[%s] delta = %v, want %v", o, got, delta)
		}
	}
}

func TestRecordRowsDropped(t *testing.T) {
	reason := "test_out_of_range"
	RecordRowsDropped(reason, 0)
	RecordRowsDropped(reason, 3)
	RecordRowsDropped(reason, 2)

	if got := testutil.ToFloat64(PipelineRowsDropped.WithLabelValues(reason)); got != 5 {
		t.Errorf("PipelineRowsDropped = %v, want 5", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("GET", "/api/v1/test-projects", "200", 10*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/test-projects", "200", 20*time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/test-projects", "200")); got != 2 {
		t.Errorf("APIRequestsTotal = %v, want 2", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - start; got != 2 {
		t.Errorf("active delta after two starts = %v, want 2", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active = %v, want %v", got, start)
	}
}

func TestRecordCacheAccess(t *testing.T) {
	RecordCacheAccess("test_cache", true)
	RecordCacheAccess("test_cache", false)
	RecordCacheAccess("test_cache", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("test_cache")); got != 1 {
		t.Errorf("CacheHits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("test_cache")); got != 2 {
		t.Errorf("CacheMisses = %v, want 2", got)
	}
}
