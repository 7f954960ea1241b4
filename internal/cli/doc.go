// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package cli implements the atlas command line tool with cobra.
//
//	atlas run --status SIGNED --top 5
//	atlas run --geojson > projects.geojson
//	atlas options
//
// Exit codes: 0 on success (including empty results), 1 when the pipeline
// rejects the dataset, 2 for flag, config or file errors.
package cli
