// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package logging provides the zerolog-based structured logger used across
// Project Atlas.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("path", path).Msg("Dataset loaded")
//	logging.Ctx(ctx).Debug().Int("dropped", n).Msg("Geo-join finished")
//
// # Configuration
//
// Environment Variables (read through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # Context fields
//
// HTTP middleware stores a request_id and the pipeline stores a run_id in
// the context; Ctx attaches both to every event.
//
// Always terminate event chains with .Msg() or .Send(); an unterminated
// chain emits nothing.
package logging
