// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package api

import (
	"context"
	"errors"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/projectatlas/internal/filter"
	"github.com/tomtom215/projectatlas/internal/logging"
	"github.com/tomtom215/projectatlas/internal/models"
	"github.com/tomtom215/projectatlas/internal/pipeline"
	"github.com/tomtom215/projectatlas/internal/validation"
)

// Error codes.
const (
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodePipelineConfig     = "PIPELINE_CONFIGURATION_ERROR"
)

// Content types.
const (
	contentTypeJSON    = "application/json"
	contentTypeGeoJSON = "application/geo+json"
)

// respondJSON writes response with an ETag derived from the body.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeBody(w, status, contentTypeJSON, data)
}

func writeBody(w http.ResponseWriter, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write response")
	}
}

// generateETag returns a weak-collision FNV-1a tag of data.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// respondError writes an error envelope. err, when set, is logged but not
// sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Str("code", apiErr.Code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, status, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// respondRunError maps a pipeline failure to an HTTP status and error code.
func respondRunError(w http.ResponseWriter, r *http.Request, err error) {
	var fatal *pipeline.FatalError
	switch {
	case errors.Is(err, filter.ErrInvalidSpec):
		respondError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    validation.CodeValidationError,
			Message: err.Error(),
		}, err)
	case errors.As(err, &fatal):
		respondError(w, r, http.StatusInternalServerError, &models.APIError{
			Code:    ErrCodePipelineConfig,
			Message: "The loaded dataset cannot be analyzed",
			Details: map[string]interface{}{
				"stage": fatal.Stage,
				"cause": fatal.Err.Error(),
			},
		}, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusServiceUnavailable, &models.APIError{
			Code:    ErrCodeServiceUnavailable,
			Message: "Request was canceled before the analysis finished",
		}, err)
	default:
		respondError(w, r, http.StatusInternalServerError, &models.APIError{
			Code:    ErrCodeInternal,
			Message: "Internal server error",
		}, err)
	}
}

// respondResult writes data in the success or empty envelope depending on
// how the run ended.
func respondResult(w http.ResponseWriter, res *pipeline.Result, cached bool, data interface{}) {
	status := models.StatusSuccess
	if res.Kind == pipeline.KindEmpty {
		status = models.StatusEmpty
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   status,
		Data:     data,
		Metadata: runMetadata(res, cached),
	})
}

func runMetadata(res *pipeline.Result, cached bool) models.Metadata {
	return models.Metadata{
		Timestamp:   time.Now(),
		QueryTimeMS: res.Duration.Milliseconds(),
		Cached:      cached,
		RunID:       res.RunID,
		EmptyReason: string(res.EmptyReason),
	}
}

// sanitizeLogValue strips line breaks so user input cannot forge log lines.
func sanitizeLogValue(s string) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
