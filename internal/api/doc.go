// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package api serves the project map over HTTP using the chi router.
//
// Every data endpoint accepts the same filter query parameters and runs
// one pipeline pass (or reuses a cached one):
//
//	status            ALL | SIGNED | CLOSED | TERMINATED (case-insensitive)
//	output            ALL | 1 | 0
//	topic             exact topic code, or ALL
//	sub_fund          exact sub-fund name, or ALL
//	min_contribution  inclusive lower bound on the EC contribution
//	max_contribution  inclusive upper bound on the EC contribution
//	top               ranking size, 1..100
//
// Endpoints (all GET):
//
//	/api/v1/health, /api/v1/health/live, /api/v1/health/ready
//	/api/v1/dashboard           projects, top organizations, stats, subtitle
//	/api/v1/projects            geolocated projects
//	/api/v1/projects/geojson    GeoJSON FeatureCollection (application/geo+json)
//	/api/v1/projects/heat       [lat, lon] heat points
//	/api/v1/organizations/top   participation ranking
//	/api/v1/filters/options     choices for the filter controls
//	/metrics                    Prometheus
//
// A run that geolocates nothing is not an error: the response is 200 with
// status "empty" and metadata.empty_reason set. Invalid parameters return
// 400 VALIDATION_ERROR; unusable dataset tables return 500
// PIPELINE_CONFIGURATION_ERROR.
package api
