// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package aggregate builds the organization participation ranking.
//
// The ranking joins all organization rows, primary or not, against the set
// of located projects. Location uses only the primary organization, while
// participation credits every partner.
package aggregate
