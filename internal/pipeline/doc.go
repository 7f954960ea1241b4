// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package pipeline is the single entry point that turns a filter into the
// two dashboard views: the geolocated project list and the organization
// participation ranking.
//
// Data flow:
//
//	dataset.Source -> normalize -> filter -> geojoin -> aggregate
//
// Every run normalizes a fresh copy of the project table and builds a
// fresh organization index, so concurrent runs share only the immutable
// Source.
//
// Outcomes:
//   - KindSuccess: at least one project was geolocated
//   - KindEmpty: nothing to show; EmptyReason separates "the filters
//     excluded everything" from "nothing that passed could be located"
//   - KindFatal: Run returned a *FatalError (missing status, id or join
//     columns, or an invalid filter)
//
// Row-level problems never fail a run. They are counted in Result.Join,
// exported as metrics, and logged once per run at debug level.
package pipeline
