// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package filter evaluates the composite project filter.
//
// Criteria combine with logical AND. Each categorical criterion accepts the
// sentinel "ALL" (or the empty string) to disable it, and the contribution
// range treats a nil bound as open. The output of Apply is always an
// order-preserving subset of its input.
//
//	spec := filter.Spec{Status: "signed", OutputFlag: "1"}
//	matched, err := filter.Apply(projects, spec)
package filter
