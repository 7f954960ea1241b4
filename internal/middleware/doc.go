// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package middleware provides HTTP middleware in http.HandlerFunc form:
// request IDs, Prometheus instrumentation and structured access logs.
// The API router adapts them to chi's func(http.Handler) http.Handler.
//
// CORS, rate limiting, panic recovery and compression come from chi and
// its companion modules and are wired in the api package.
package middleware
