// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline outcomes used as label values.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeFatal   = "fatal"
)

var (
	// Dataset Metrics
	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "atlas_dataset_load_duration_seconds",
			Help:    "Duration of registry table loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atlas_dataset_load_errors_total",
			Help: "Total number of failed registry table loads",
		},
		[]string{"table"},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "atlas_dataset_rows",
			Help: "Number of rows in each loaded registry table",
		},
		[]string{"table"},
	)

	// Pipeline Metrics
	PipelineRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "atlas_pipeline_run_duration_seconds",
			Help:    "Duration of pipeline runs in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"outcome"},
	)

	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atlas_pipeline_runs_total",
			Help: "Total number of pipeline runs by outcome",
		},
		[]string{"outcome"},
	)

	// Row-level drops are expected data quality noise, not failures.
	PipelineRowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atlas_pipeline_rows_dropped_total",
			Help: "Projects dropped by the geo-join, by reason",
		},
		[]string{"reason"},
	)

	PipelineGeolocated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "atlas_pipeline_geolocated_projects",
			Help:    "Number of geolocated projects produced per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atlas_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "atlas_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "atlas_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atlas_cache_hits_total",
			Help: "Total number of response cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atlas_cache_misses_total",
			Help: "Total number of response cache misses",
		},
		[]string{"cache"},
	)
)

// RecordDatasetLoad records one table load.
func RecordDatasetLoad(table string, duration time.Duration, err error) {
	DatasetLoadDuration.WithLabelValues(table).Observe(duration.Seconds())
	if err != nil {
		DatasetLoadErrors.WithLabelValues(table).Inc()
	}
}

// RecordPipelineRun records one pipeline run. geolocated is ignored for
// fatal runs.
func RecordPipelineRun(outcome string, duration time.Duration, geolocated int) {
	PipelineRuns.WithLabelValues(outcome).Inc()
	PipelineRunDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	if outcome != OutcomeFatal {
		PipelineGeolocated.Observe(float64(geolocated))
	}
}

// RecordRowsDropped adds n dropped projects under reason. Zero is a no-op.
func RecordRowsDropped(reason string, n int) {
	if n > 0 {
		PipelineRowsDropped.WithLabelValues(reason).Add(float64(n))
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheAccess records a hit or miss for the named cache.
func RecordCacheAccess(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}
