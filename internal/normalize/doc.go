// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package normalize turns raw project table rows into typed models.Project
// values.
//
// Coercion rules:
//   - status: trimmed and upper-cased; NULL becomes ""
//   - output: non-negative integer; anything unparseable becomes 0
//   - ecMaxContribution, totalCost: float; unparseable becomes nil
//   - text columns: NULL or empty becomes nil
//
// A table without a status or id column is structurally unusable and
// yields ErrMissingStatusColumn or ErrMissingIDColumn.
package normalize
