// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package geojoin

import (
	"errors"
	"strconv"
	"strings"
)

// Coordinate bounds.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

var (
	// ErrMalformedGeolocation is returned for text that is not two numbers.
	ErrMalformedGeolocation = errors.New("geojoin: geolocation is not \"lat,lon\"")

	// ErrOutOfRange is returned for coordinates outside the valid bounds.
	ErrOutOfRange = errors.New("geojoin: coordinates out of range")
)

// ParseGeolocation parses "lat,lon". The text must contain exactly two
// comma-separated numeric tokens; whitespace around a token is ignored.
// Out-of-range values are rejected, never clamped. NaN and infinities are
// out of range.
func ParseGeolocation(s string) (lat, lon float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, ErrMalformedGeolocation
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, ErrMalformedGeolocation
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, ErrMalformedGeolocation
	}

	// Written as negated ranges so NaN fails both checks.
	if !(lat >= MinLatitude && lat <= MaxLatitude) || !(lon >= MinLongitude && lon <= MaxLongitude) {
		return 0, 0, ErrOutOfRange
	}
	return lat, lon, nil
}
