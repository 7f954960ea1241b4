// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package export

import "github.com/tomtom215/projectatlas/internal/models"

// HeatPoints returns [lat, lon] pairs for a heat layer, one per project.
// Unlike GeoJSON, heat layers take latitude first.
func HeatPoints(projects []models.GeolocatedProject) [][2]float64 {
	out := make([][2]float64, len(projects))
	for i := range projects {
		out[i] = [2]float64{projects[i].Latitude, projects[i].Longitude}
	}
	return out
}
