// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package geojoin resolves projects to map coordinates.
//
// Each project is placed at the geolocation of its primary organization,
// the organization row with order 1. When several order-1 rows exist the
// first in table order wins. A project is dropped, silently apart from the
// Stats counters, when:
//
//   - no organization row references it
//   - none of its organization rows has order 1
//   - the primary's geolocation is missing, malformed or out of range
//
// Geolocations are "lat,lon" text. Latitude must lie in [-90, 90] and
// longitude in [-180, 180]; nothing is clamped.
package geojoin
