// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package pipeline

import (
	"context"
	"time"

	"github.com/tomtom215/projectatlas/internal/aggregate"
	"github.com/tomtom215/projectatlas/internal/dataset"
	"github.com/tomtom215/projectatlas/internal/filter"
	"github.com/tomtom215/projectatlas/internal/geojoin"
	"github.com/tomtom215/projectatlas/internal/logging"
	"github.com/tomtom215/projectatlas/internal/metrics"
	"github.com/tomtom215/projectatlas/internal/models"
	"github.com/tomtom215/projectatlas/internal/normalize"
)

// Options configures a Pipeline.
type Options struct {
	// TopN is the default organization ranking size.
	TopN int
}

// Request is one pipeline invocation.
type Request struct {
	Filter filter.Spec
	// TopN overrides Options.TopN when positive.
	TopN int
}

// Pipeline runs normalize, filter, geo-join and aggregate over a loaded
// Source. It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	source *dataset.Source
	topN   int
}

// New creates a Pipeline over src.
func New(src *dataset.Source, opts Options) *Pipeline {
	topN := opts.TopN
	if topN <= 0 {
		topN = aggregate.DefaultTopN
	}
	return &Pipeline{source: src, topN: topN}
}

// Source returns the dataset the pipeline reads.
func (p *Pipeline) Source() *dataset.Source {
	return p.source
}

// Run executes one pipeline pass. A structural problem with the tables or
// an invalid filter returns a *FatalError. Otherwise the Result is either
// KindSuccess or KindEmpty; an empty result is not an error.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	runID := logging.GenerateRunID()
	ctx = logging.ContextWithRunID(ctx, runID)

	res, err := p.run(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordPipelineRun(metrics.OutcomeFatal, elapsed, 0)
		logging.Ctx(ctx).Error().Err(err).Dur("duration", elapsed).Msg("Pipeline run failed")
		return nil, err
	}

	res.RunID = runID
	res.Duration = elapsed
	metrics.RecordPipelineRun(res.Kind.String(), elapsed, len(res.Projects))
	for reason, n := range res.Join.Dropped() {
		metrics.RecordRowsDropped(reason, n)
	}

	logging.Ctx(ctx).Debug().
		Str("outcome", res.Kind.String()).
		Str("empty_reason", string(res.EmptyReason)).
		Int("projects", res.Normalize.Rows).
		Int("matched", res.Matched).
		Int("geolocated", res.Join.Geolocated).
		Int("dropped_no_organization", res.Join.NoOrganization).
		Int("dropped_no_primary", res.Join.NoPrimary).
		Int("dropped_missing_geolocation", res.Join.MissingGeolocation).
		Int("dropped_malformed_geolocation", res.Join.MalformedGeolocation).
		Int("dropped_out_of_range", res.Join.OutOfRange).
		Int("duplicate_primary", res.Join.DuplicatePrimary).
		Int("organizations", len(res.Organizations)).
		Dur("duration", elapsed).
		Msg("Pipeline run finished")

	return res, nil
}

func (p *Pipeline) run(ctx context.Context, req Request) (*Result, error) {
	projects, nstats, err := normalize.Projects(p.source.Projects())
	if err != nil {
		return nil, &FatalError{Stage: StageNormalize, Err: err}
	}

	index, err := geojoin.NewIndex(p.source.Organizations())
	if err != nil {
		return nil, &FatalError{Stage: StageGeoJoin, Err: err}
	}

	matched, err := filter.Apply(projects, req.Filter)
	if err != nil {
		return nil, &FatalError{Stage: StageFilter, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	located, jstats := geojoin.Resolve(matched, index)

	topN := p.topN
	if req.TopN > 0 {
		topN = req.TopN
	}

	res := &Result{
		Kind:          KindSuccess,
		Projects:      located,
		Organizations: aggregate.TopOrganizations(index.Records(), located, topN),
		Stats:         ComputeStats(located),
		Subtitle:      req.Filter.Describe(),
		Matched:       len(matched),
		Normalize:     nstats,
		Join:          jstats,
	}
	if len(located) == 0 {
		res.Kind = KindEmpty
		res.EmptyReason = ReasonNoGeolocated
		if len(matched) == 0 {
			res.EmptyReason = ReasonNoFilterMatches
		}
	}
	return res, nil
}

// ComputeStats counts located projects with and without output.
func ComputeStats(located []models.GeolocatedProject) models.ProjectStats {
	s := models.ProjectStats{Total: len(located)}
	for i := range located {
		switch {
		case located[i].HasOutput():
			s.WithOutput++
		case located[i].Output == 0:
			s.WithoutOutput++
		}
	}
	return s
}
