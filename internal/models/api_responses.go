// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusEmpty   = "empty"
	StatusError   = "error"
)

// APIResponse is the envelope written by every HTTP endpoint.
//
// Status is "success" when Data holds a result, "empty" when the pipeline
// ran but produced no geolocated projects (Metadata.EmptyReason says why),
// and "error" when Error is populated.
//
//	{
//	  "status": "empty",
//	  "data": {"projects": [], "organizations": []},
//	  "metadata": {
//	    "timestamp": "2026-03-02T12:00:00Z",
//	    "run_id": "4f1c2a9e",
//	    "empty_reason": "no_filter_matches"
//	  }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and provenance for a response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RunID       string    `json:"run_id,omitempty"`
	EmptyReason string    `json:"empty_reason,omitempty"`
}

// APIError is the structured error body.
//
// Codes in use:
//   - VALIDATION_ERROR: a query parameter failed validation
//   - PIPELINE_CONFIGURATION_ERROR: the loaded tables are structurally unusable
//   - METHOD_NOT_ALLOWED
//   - INTERNAL_ERROR
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// DashboardData is the combined payload behind the dashboard page.
type DashboardData struct {
	Subtitle      string                `json:"subtitle"`
	Stats         ProjectStats          `json:"stats"`
	Projects      []GeolocatedProject   `json:"projects"`
	Organizations []OrganizationSummary `json:"organizations"`
}

// HealthStatus reports process and dataset health.
type HealthStatus struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	DatasetLoaded bool      `json:"dataset_loaded"`
	Projects      int       `json:"projects"`
	Organizations int       `json:"organizations"`
	LoadedAt      time.Time `json:"loaded_at"`
	Uptime        float64   `json:"uptime_seconds"`
}
