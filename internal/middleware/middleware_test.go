// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/projectatlas/internal/logging"
	"github.com/tomtom215/projectatlas/internal/metrics"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "generates when absent", incoming: ""},
		{name: "reuses upstream id", incoming: "edge-1234", wantSame: true},
		{name: "rejects whitespace", incoming: "bad id"},
		{name: "rejects oversized", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var captured string
			h := RequestID(func(w http.ResponseWriter, r *http.Request) {
				captured = logging.RequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got == "" || got != captured {
				t.Fatalf("header %q, context %q", got, captured)
			}
			if tt.wantSame {
				if got != tt.incoming {
					t.Errorf("id = %q, want %q", got, tt.incoming)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("generated id %q is not a UUID: %v", got, err)
			}
		})
	}
}

func TestPrometheusMetrics_RoutePattern(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return PrometheusMetrics(next.ServeHTTP) })
	r.Get("/api/v1/test-metrics/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/test-metrics/{id}", "418")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/test-metrics/"+id, nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("status = %d", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("counter delta = %v, want 3 under one route label", got)
	}
}

func TestStatusResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := &statusResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	_, _ = sw.Write([]byte("hello"))
	sw.WriteHeader(http.StatusInternalServerError) // ignored after body

	if sw.statusCode != http.StatusOK || sw.bytes != 5 {
		t.Errorf("status=%d bytes=%d", sw.statusCode, sw.bytes)
	}
	if sw.Unwrap() != rec {
		t.Error("Unwrap should return the wrapped writer")
	}
}

func TestAccessLog(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success logs at debug", status: http.StatusOK, wantLevel: `"level":"debug"`},
		{name: "server error logs at warn", status: http.StatusInternalServerError, wantLevel: `"level":"warn"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewTestLogger(&buf)

			h := AccessLog(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("{}"))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?status=SIGNED", nil)
			ctx := logging.ContextWithLogger(req.Context(), logger)
			ctx = logging.ContextWithRequestID(ctx, "req-1")
			h(httptest.NewRecorder(), req.WithContext(ctx))

			out := buf.String()
			for _, want := range []string{tt.wantLevel, `"path":"/api/v1/dashboard"`, `"query":"status=SIGNED"`, `"request_id":"req-1"`, `"bytes":2`} {
				if !strings.Contains(out, want) {
					t.Errorf("log %s missing %s", out, want)
				}
			}
		})
	}
}
