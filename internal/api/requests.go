// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/projectatlas/internal/filter"
	"github.com/tomtom215/projectatlas/internal/models"
	"github.com/tomtom215/projectatlas/internal/pipeline"
	"github.com/tomtom215/projectatlas/internal/validation"
)

// Query parameter names.
const (
	ParamStatus          = "status"
	ParamOutput          = "output"
	ParamTopic           = "topic"
	ParamSubFund         = "sub_fund"
	ParamMinContribution = "min_contribution"
	ParamMaxContribution = "max_contribution"
	ParamTop             = "top"
)

// RunRequest is the validated form of the filter query parameters.
type RunRequest struct {
	Filter filter.Spec `json:"filter"`
	Top    int         `json:"top" validate:"min=0,max=100"`
}

// parseRunRequest reads and validates the filter parameters of r.
func parseRunRequest(r *http.Request) (pipeline.Request, *models.APIError) {
	q := r.URL.Query()

	req := RunRequest{
		Filter: filter.Spec{
			Status:     strings.TrimSpace(q.Get(ParamStatus)),
			OutputFlag: strings.TrimSpace(q.Get(ParamOutput)),
			Topic:      q.Get(ParamTopic),
			SubFund:    q.Get(ParamSubFund),
		},
	}

	minC, apiErr := parseAmountParam(q.Get(ParamMinContribution), ParamMinContribution)
	if apiErr != nil {
		return pipeline.Request{}, apiErr
	}
	maxC, apiErr := parseAmountParam(q.Get(ParamMaxContribution), ParamMaxContribution)
	if apiErr != nil {
		return pipeline.Request{}, apiErr
	}
	if minC != nil || maxC != nil {
		req.Filter.Contribution = &filter.Range{Min: minC, Max: maxC}
	}

	if raw := strings.TrimSpace(q.Get(ParamTop)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return pipeline.Request{}, paramError(ParamTop, raw, "top must be an integer")
		}
		if n < 1 {
			return pipeline.Request{}, paramError(ParamTop, raw, "top must be at least 1")
		}
		req.Top = n
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		return pipeline.Request{}, verr.ToAPIError()
	}
	return pipeline.Request{Filter: req.Filter, TopN: req.Top}, nil
}

// parseAmountParam parses an optional finite number.
func parseAmountParam(raw, name string) (*float64, *models.APIError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, paramError(name, raw, fmt.Sprintf("%s must be a finite number", name))
	}
	return &f, nil
}

func paramError(field, value, message string) *models.APIError {
	return &models.APIError{
		Code:    validation.CodeValidationError,
		Message: message,
		Details: map[string]interface{}{
			"field": field,
			"value": value,
		},
	}
}
