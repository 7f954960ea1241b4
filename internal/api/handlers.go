// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package api

import (
	"context"
	"time"

	"github.com/tomtom215/projectatlas/internal/cache"
	"github.com/tomtom215/projectatlas/internal/pipeline"
)

// RunCacheName labels the pipeline result cache in metrics.
const RunCacheName = "pipeline_runs"

// Handler holds the dependencies shared by all endpoints.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, cached pipeline access
//   - handlers_helpers.go: JSON responses and error mapping
//   - handlers_health.go: health, liveness and readiness
//   - handlers_projects.go: dashboard, projects, GeoJSON, heat, rankings
//   - requests.go: query parameter parsing and validation
type Handler struct {
	pipeline  *pipeline.Pipeline
	cache     *cache.Cache[*pipeline.Result]
	version   string
	startTime time.Time
}

// NewHandler creates a Handler. A nil pipeline means the dataset is not
// loaded yet: health reports degraded and data endpoints return 503.
// A nil cache disables result caching.
func NewHandler(p *pipeline.Pipeline, c *cache.Cache[*pipeline.Result], version string) *Handler {
	return &Handler{
		pipeline:  p,
		cache:     c,
		version:   version,
		startTime: time.Now(),
	}
}

// run executes req, serving repeated filter combinations from the cache.
// Only successful and empty results are cached; fatal errors are cheap to
// reproduce and should stay visible in logs.
func (h *Handler) run(ctx context.Context, req pipeline.Request) (*pipeline.Result, bool, error) {
	if h.cache == nil {
		res, err := h.pipeline.Run(ctx, req)
		return res, false, err
	}

	key := cache.GenerateKey("run", req)
	if res, ok := h.cache.Get(key); ok {
		return res, true, nil
	}

	res, err := h.pipeline.Run(ctx, req)
	if err != nil {
		return nil, false, err
	}
	h.cache.Set(key, res)
	return res, false, nil
}
