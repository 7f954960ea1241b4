// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package export

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/tomtom215/projectatlas/internal/models"
)

// FeatureCollection converts located projects to GeoJSON Point features.
// Coordinates follow GeoJSON axis order: longitude, then latitude. The
// collection's bbox covers every feature; it is omitted when empty.
func FeatureCollection(projects []models.GeolocatedProject) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(projects)),
	}
	for i := range projects {
		p := &projects[i]
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         p.ProjectID,
			Geometry:   point(p),
			Properties: properties(p),
		})
	}
	fc.BBox = Bounds(projects)
	return fc
}

// MarshalGeoJSON encodes projects as a GeoJSON FeatureCollection.
func MarshalGeoJSON(projects []models.GeolocatedProject) ([]byte, error) {
	b, err := FeatureCollection(projects).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode geojson: %w", err)
	}
	return b, nil
}

// Bounds returns the extent of projects, or nil when there are none.
func Bounds(projects []models.GeolocatedProject) *geom.Bounds {
	if len(projects) == 0 {
		return nil
	}
	b := geom.NewBounds(geom.XY)
	for i := range projects {
		b.Extend(point(&projects[i]))
	}
	return b
}

func point(p *models.GeolocatedProject) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Longitude, p.Latitude})
}

func properties(p *models.GeolocatedProject) map[string]interface{} {
	props := map[string]interface{}{
		"project_id": p.ProjectID,
		"title":      p.Title,
		"status":     string(p.Status),
		"output":     p.Output,
		"has_output": p.HasOutput(),
		"start_date": p.StartDate,
		"end_date":   p.EndDate,
		"sub_fund":   p.SubFund,
		"topic":      p.Topic,
	}
	if p.Contribution != nil {
		props["contribution"] = *p.Contribution
	}
	if p.TotalCost != nil {
		props["total_cost"] = *p.TotalCost
	}
	return props
}
