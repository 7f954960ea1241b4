// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package dataset loads the project and organization registries into
// immutable in-memory tables.
//
// Two loaders are available:
//
//   - DuckDBLoader reads through DuckDB's read_csv (UTF-8 only)
//   - CSVLoader reads through encoding/csv and decodes latin-1 and
//     windows-1252 files with golang.org/x/text
//
// Both treat empty cells as NULL, skip malformed lines and pad short lines.
//
// The Source type has an explicit lifecycle: build it once at startup with
// Open, then hand it to the pipeline. Tables are never mutated, so a Source
// can serve concurrent pipeline runs without locking. Once offers the same
// guarantee for callers that prefer to load lazily.
package dataset
