// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package metrics defines the Prometheus instruments exported on /metrics.
//
// Metric families:
//   - atlas_dataset_*: table load duration, failures and row counts
//   - atlas_pipeline_*: run duration and count by outcome (success, empty,
//     fatal), projects dropped by the geo-join by reason, and geolocated
//     result sizes
//   - atlas_api_*: request counts, latency and in-flight requests
//   - atlas_cache_*: response cache hits and misses
//
// All instruments are registered on the default registry via promauto.
// Callers use the Record* helpers rather than touching instruments directly.
package metrics
