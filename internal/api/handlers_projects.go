// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/projectatlas/internal/export"
	"github.com/tomtom215/projectatlas/internal/models"
	"github.com/tomtom215/projectatlas/internal/pipeline"
)

// Response headers set on the raw GeoJSON endpoint, which has no envelope.
const (
	HeaderRunID       = "X-Run-ID"
	HeaderEmptyReason = "X-Empty-Reason"
)

// RankedOrganization is one row of the organization ranking.
type RankedOrganization struct {
	Rank int `json:"rank"`
	models.OrganizationSummary
	DisplayName string `json:"display_name"`
}

// ProjectsData is the payload of the projects endpoint.
type ProjectsData struct {
	Count    int                        `json:"count"`
	Projects []models.GeolocatedProject `json:"projects"`
}

// HeatData is the payload of the heat endpoint.
type HeatData struct {
	Count  int          `json:"count"`
	Points [][2]float64 `json:"points"`
}

// withRun parses the filter parameters, runs the pipeline, and hands a
// non-fatal result to fn. Errors are written here.
func (h *Handler) withRun(w http.ResponseWriter, r *http.Request, fn func(res *pipeline.Result, cached bool)) {
	if h.pipeline == nil {
		respondError(w, r, http.StatusServiceUnavailable, &models.APIError{
			Code:    ErrCodeServiceUnavailable,
			Message: "Dataset not loaded",
		}, nil)
		return
	}

	req, apiErr := parseRunRequest(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	res, cached, err := h.run(r.Context(), req)
	if err != nil {
		respondRunError(w, r, err)
		return
	}
	fn(res, cached)
}

// Dashboard returns everything the map page needs in one response.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.withRun(w, r, func(res *pipeline.Result, cached bool) {
		respondResult(w, res, cached, models.DashboardData{
			Subtitle:      res.Subtitle,
			Stats:         res.Stats,
			Projects:      nonNilProjects(res.Projects),
			Organizations: res.Organizations,
		})
	})
}

// Projects returns the geolocated projects.
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	h.withRun(w, r, func(res *pipeline.Result, cached bool) {
		respondResult(w, res, cached, ProjectsData{
			Count:    len(res.Projects),
			Projects: nonNilProjects(res.Projects),
		})
	})
}

// ProjectsGeoJSON returns the geolocated projects as a bare GeoJSON
// FeatureCollection so map libraries can load the URL directly.
func (h *Handler) ProjectsGeoJSON(w http.ResponseWriter, r *http.Request) {
	h.withRun(w, r, func(res *pipeline.Result, _ bool) {
		body, err := export.MarshalGeoJSON(res.Projects)
		if err != nil {
			respondRunError(w, r, err)
			return
		}
		w.Header().Set(HeaderRunID, res.RunID)
		if res.EmptyReason != "" {
			w.Header().Set(HeaderEmptyReason, string(res.EmptyReason))
		}
		writeBody(w, http.StatusOK, contentTypeGeoJSON, body)
	})
}

// ProjectsHeat returns [lat, lon] pairs for the heat layer.
func (h *Handler) ProjectsHeat(w http.ResponseWriter, r *http.Request) {
	h.withRun(w, r, func(res *pipeline.Result, cached bool) {
		respondResult(w, res, cached, HeatData{
			Count:  len(res.Projects),
			Points: export.HeatPoints(res.Projects),
		})
	})
}

// TopOrganizations returns the participation ranking.
func (h *Handler) TopOrganizations(w http.ResponseWriter, r *http.Request) {
	h.withRun(w, r, func(res *pipeline.Result, cached bool) {
		ranked := make([]RankedOrganization, len(res.Organizations))
		for i := range res.Organizations {
			org := res.Organizations[i]
			ranked[i] = RankedOrganization{
				Rank:                i + 1,
				OrganizationSummary: org,
				DisplayName:         org.DisplayName(),
			}
		}
		respondResult(w, res, cached, ranked)
	})
}

// FilterOptions returns the choices for the filter controls.
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	if h.pipeline == nil {
		respondError(w, r, http.StatusServiceUnavailable, &models.APIError{
			Code:    ErrCodeServiceUnavailable,
			Message: "Dataset not loaded",
		}, nil)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     h.pipeline.FilterOptions(),
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

func nonNilProjects(p []models.GeolocatedProject) []models.GeolocatedProject {
	if p == nil {
		return []models.GeolocatedProject{}
	}
	return p
}
