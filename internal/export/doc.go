// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package export renders geolocated projects for map clients: a GeoJSON
// FeatureCollection (built with go-geom) and a plain list of heat-layer
// points.
package export
