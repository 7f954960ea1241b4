// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package geojoin

import (
	"errors"

	"github.com/tomtom215/projectatlas/internal/models"
)

// Drop reasons.
const (
	ReasonNoOrganization       = "no_organization"
	ReasonNoPrimary            = "no_primary"
	ReasonMissingGeolocation   = "missing_geolocation"
	ReasonMalformedGeolocation = "malformed_geolocation"
	ReasonOutOfRange           = "out_of_range"
)

// Stats counts what happened to each project during Resolve.
type Stats struct {
	Input                int `json:"input"`
	Geolocated           int `json:"geolocated"`
	NoOrganization       int `json:"no_organization"`
	NoPrimary            int `json:"no_primary"`
	MissingGeolocation   int `json:"missing_geolocation"`
	MalformedGeolocation int `json:"malformed_geolocation"`
	OutOfRange           int `json:"out_of_range"`

	// DuplicatePrimary counts located projects that had more than one
	// order-1 organization. They are not dropped.
	DuplicatePrimary int `json:"duplicate_primary"`
}

// Dropped returns the drop counts keyed by reason.
func (s Stats) Dropped() map[string]int {
	return map[string]int{
		ReasonNoOrganization:       s.NoOrganization,
		ReasonNoPrimary:            s.NoPrimary,
		ReasonMissingGeolocation:   s.MissingGeolocation,
		ReasonMalformedGeolocation: s.MalformedGeolocation,
		ReasonOutOfRange:           s.OutOfRange,
	}
}

// TotalDropped returns the number of projects that were not located.
func (s Stats) TotalDropped() int {
	return s.Input - s.Geolocated
}

// Resolve places each project at its primary organization's coordinates.
// Projects with no organization, no order-1 organization, or unusable
// coordinates are dropped and counted; they are not errors. Output order
// follows input order.
func Resolve(projects []models.Project, ix *Index) ([]models.GeolocatedProject, Stats) {
	stats := Stats{Input: len(projects)}
	out := make([]models.GeolocatedProject, 0, len(projects))

	for i := range projects {
		p := &projects[i]
		if !ix.HasProject(p.ID) {
			stats.NoOrganization++
			continue
		}

		primary, n := ix.Primary(p.ID)
		if primary == nil {
			stats.NoPrimary++
			continue
		}
		if primary.Geolocation == nil {
			stats.MissingGeolocation++
			continue
		}

		lat, lon, err := ParseGeolocation(*primary.Geolocation)
		if err != nil {
			if errors.Is(err, ErrOutOfRange) {
				stats.OutOfRange++
			} else {
				stats.MalformedGeolocation++
			}
			continue
		}

		if n > 1 {
			stats.DuplicatePrimary++
		}
		out = append(out, models.NewGeolocatedProject(p, lat, lon))
	}

	stats.Geolocated = len(out)
	return out, stats
}
