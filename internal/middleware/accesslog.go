// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/projectatlas/internal/logging"
)

// AccessLog writes one structured event per request. Server errors log at
// warn, everything else at debug, so a quiet info-level deployment only
// hears about failures.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(sw, r)

		logger := logging.Ctx(r.Context())
		var event *zerolog.Event
		if sw.statusCode >= http.StatusInternalServerError {
			event = logger.Warn()
		} else {
			event = logger.Debug()
		}
		event.
			Str("component", "http").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", sw.statusCode).
			Int("bytes", sw.bytes).
			Dur("duration", time.Since(start)).
			Msg("Request completed")
	}
}
