// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/projectatlas/internal/models"
)

// Health reports process uptime and whether the dataset is loaded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:  "degraded",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if h.pipeline != nil {
		src := h.pipeline.Source()
		health.Status = "healthy"
		health.DatasetLoaded = true
		health.Projects = src.Projects().Len()
		health.Organizations = src.Organizations().Len()
		health.LoadedAt = src.LoadedAt()
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive returns 200 while the process is running.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady returns 200 once the dataset is loaded and 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.pipeline == nil {
		respondError(w, r, http.StatusServiceUnavailable, &models.APIError{
			Code:    ErrCodeServiceUnavailable,
			Message: "Dataset not loaded",
		}, nil)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     map[string]interface{}{"ready": true},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
