// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package pipeline

import (
	"fmt"
	"time"

	"github.com/tomtom215/projectatlas/internal/geojoin"
	"github.com/tomtom215/projectatlas/internal/models"
	"github.com/tomtom215/projectatlas/internal/normalize"
)

// Kind classifies a pipeline run.
type Kind int

const (
	// KindSuccess means at least one project was geolocated.
	KindSuccess Kind = iota
	// KindEmpty means the run completed with no geolocated projects.
	KindEmpty
	// KindFatal means the input tables are structurally unusable or the
	// request is invalid.
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindEmpty:
		return "empty"
	case KindFatal:
		return "fatal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// EmptyReason says why a run produced no geolocated projects.
type EmptyReason string

const (
	// ReasonNoFilterMatches: the filters excluded every project.
	ReasonNoFilterMatches EmptyReason = "no_filter_matches"
	// ReasonNoGeolocated: projects passed the filters but none could be placed.
	ReasonNoGeolocated EmptyReason = "no_geolocated_projects"
)

// Stage names reported by FatalError.
const (
	StageNormalize = "normalize"
	StageFilter    = "filter"
	StageGeoJoin   = "geojoin"
)

// FatalError is returned for structural failures. Use errors.Is on it to
// reach the underlying sentinel, such as normalize.ErrMissingStatusColumn.
type FatalError struct {
	Stage string
	Err   error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("pipeline: %s: %v", e.Stage, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a non-fatal run. Every slice is owned by the
// caller and shares nothing with the source tables or other runs.
type Result struct {
	RunID       string
	Kind        Kind
	EmptyReason EmptyReason

	Projects      []models.GeolocatedProject
	Organizations []models.OrganizationSummary
	Stats         models.ProjectStats
	Subtitle      string

	// Matched is the number of projects that passed the filters.
	Matched   int
	Normalize normalize.Stats
	Join      geojoin.Stats
	Duration  time.Duration
}

// KindOf classifies the return values of Pipeline.Run.
func KindOf(res *Result, err error) Kind {
	if err != nil || res == nil {
		return KindFatal
	}
	return res.Kind
}
