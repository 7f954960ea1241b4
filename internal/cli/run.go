// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomtom215/projectatlas/internal/export"
	"github.com/tomtom215/projectatlas/internal/filter"
	"github.com/tomtom215/projectatlas/internal/models"
	"github.com/tomtom215/projectatlas/internal/pipeline"
	"github.com/tomtom215/projectatlas/internal/validation"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	Status          string
	Output          string
	Topic           string
	SubFund         string
	MinContribution float64
	MaxContribution float64
	Top             int
	GeoJSON         bool
	Pretty          bool
}

// runOutput is the JSON document printed by atlas run.
type runOutput struct {
	RunID         string                       `json:"run_id"`
	Kind          string                       `json:"kind"`
	EmptyReason   string                       `json:"empty_reason,omitempty"`
	Subtitle      string                       `json:"subtitle"`
	Matched       int                          `json:"matched"`
	Stats         models.ProjectStats          `json:"stats"`
	Organizations []models.OrganizationSummary `json:"organizations"`
	Projects      []models.GeolocatedProject   `json:"projects"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Filter, geolocate and rank projects",
		Long: `Run the pipeline once and print the result.

Filters left unset, or set to ALL, match every project. An empty result is
not an error: the output carries empty_reason instead.

Example:
  atlas run --status SIGNED --topic CL5 --top 5 --pretty
  atlas run --engine csv --encoding latin-1 --geojson > projects.geojson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Status, "status", "", "project status, case-insensitive (default ALL)")
	f.StringVar(&opts.Output, "output", "", "output flag, a non-negative integer (default ALL)")
	f.StringVar(&opts.Topic, "topic", "", "exact topic (default ALL)")
	f.StringVar(&opts.SubFund, "sub-fund", "", "exact sub-fund (default ALL)")
	f.Float64Var(&opts.MinContribution, "min-contribution", 0, "inclusive lower contribution bound")
	f.Float64Var(&opts.MaxContribution, "max-contribution", 0, "inclusive upper contribution bound")
	f.IntVar(&opts.Top, "top", 0, "number of organizations to rank (default from config)")
	f.BoolVar(&opts.GeoJSON, "geojson", false, "print a GeoJSON FeatureCollection instead")
	f.BoolVar(&opts.Pretty, "pretty", false, "indent JSON output")

	return cmd
}

func (o *RunOptions) spec(cmd *cobra.Command) filter.Spec {
	spec := filter.Spec{
		Status:     strings.TrimSpace(o.Status),
		OutputFlag: strings.TrimSpace(o.Output),
		Topic:      o.Topic,
		SubFund:    o.SubFund,
	}
	var r filter.Range
	if cmd.Flags().Changed("min-contribution") {
		v := o.MinContribution
		r.Min = &v
	}
	if cmd.Flags().Changed("max-contribution") {
		v := o.MaxContribution
		r.Max = &v
	}
	if r.Bounded() {
		spec.Contribution = &r
	}
	return spec
}

func (o *RunOptions) run(cmd *cobra.Command) error {
	if o.Top < 0 || o.Top > 100 {
		return WrapExitError(ExitCommandError, "invalid --top", errors.New("must be between 0 and 100"))
	}
	spec := o.spec(cmd)
	if verr := validation.ValidateStruct(spec); verr != nil {
		return WrapExitError(ExitCommandError, "invalid filter", verr)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := o.cfg.Dataset.OpenSource(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dataset", err)
	}

	p := pipeline.New(src, pipeline.Options{TopN: o.cfg.Pipeline.TopN})
	res, err := p.Run(ctx, pipeline.Request{Filter: spec, TopN: o.Top})
	if err != nil {
		return WrapExitError(ExitFailure, "pipeline failed", err)
	}

	out := cmd.OutOrStdout()
	if o.GeoJSON {
		body, err := export.MarshalGeoJSON(res.Projects)
		if err != nil {
			return err
		}
		_, err = out.Write(append(body, '\n'))
		return err
	}

	doc := runOutput{
		RunID:         res.RunID,
		Kind:          res.Kind.String(),
		EmptyReason:   string(res.EmptyReason),
		Subtitle:      res.Subtitle,
		Matched:       res.Matched,
		Stats:         res.Stats,
		Organizations: res.Organizations,
		Projects:      res.Projects,
	}
	if doc.Organizations == nil {
		doc.Organizations = []models.OrganizationSummary{}
	}
	if doc.Projects == nil {
		doc.Projects = []models.GeolocatedProject{}
	}
	return writeJSON(out, doc, o.Pretty)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
