// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/projectatlas/internal/logging"
	"github.com/tomtom215/projectatlas/internal/metrics"
)

// Table names used in logs and metrics.
const (
	TableProjects      = "projects"
	TableOrganizations = "organizations"
)

// ErrNoPath is returned when a file path is not configured.
var ErrNoPath = errors.New("dataset: path not configured")

// Files locates the two registry files.
type Files struct {
	ProjectPath         string
	ProjectOptions      ReadOptions
	OrganizationPath    string
	OrganizationOptions ReadOptions
}

// DefaultFiles returns the registry's native formats: comma-separated
// projects and semicolon-separated organizations, both UTF-8.
func DefaultFiles(projectPath, organizationPath string) Files {
	return Files{
		ProjectPath:         projectPath,
		ProjectOptions:      ReadOptions{Delimiter: ',', Encoding: EncodingUTF8},
		OrganizationPath:    organizationPath,
		OrganizationOptions: ReadOptions{Delimiter: ';', Encoding: EncodingUTF8},
	}
}

// Source holds the two loaded registry tables. It is built once, by Open
// or NewSource, and is read-only afterwards.
type Source struct {
	projects      *Table
	organizations *Table
	loadedAt      time.Time
}

// NewSource wraps tables that are already loaded.
func NewSource(projects, organizations *Table) *Source {
	return &Source{projects: projects, organizations: organizations, loadedAt: time.Now()}
}

// Open loads both registry files with loader. Any failure is fatal to the
// caller: there is no partially loaded Source.
func Open(ctx context.Context, loader Loader, files Files) (*Source, error) {
	projects, err := loadTable(ctx, loader, TableProjects, files.ProjectPath, files.ProjectOptions)
	if err != nil {
		return nil, err
	}
	organizations, err := loadTable(ctx, loader, TableOrganizations, files.OrganizationPath, files.OrganizationOptions)
	if err != nil {
		return nil, err
	}
	return NewSource(projects, organizations), nil
}

func loadTable(ctx context.Context, loader Loader, table, path string, opts ReadOptions) (*Table, error) {
	if path == "" {
		return nil, fmt.Errorf("%s: %w", table, ErrNoPath)
	}

	start := time.Now()
	t, err := loader.Load(ctx, path, opts)
	metrics.RecordDatasetLoad(table, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s from %s: %w", table, path, err)
	}
	metrics.DatasetRows.WithLabelValues(table).Set(float64(t.Len()))

	logging.Info().
		Str("table", table).
		Str("path", path).
		Int("rows", t.Len()).
		Int("columns", len(t.columns)).
		Dur("duration", time.Since(start)).
		Msg("Dataset table loaded")
	return t, nil
}

// Projects returns the project table.
func (s *Source) Projects() *Table { return s.projects }

// Organizations returns the organization table.
func (s *Source) Organizations() *Table { return s.organizations }

// LoadedAt returns when the Source was built.
func (s *Source) LoadedAt() time.Time { return s.loadedAt }

// Once defers loading to first use and shares the outcome, success or
// failure, with every caller. Concurrent first callers block until the
// single load finishes.
type Once struct {
	once sync.Once
	open func(context.Context) (*Source, error)
	src  *Source
	err  error
}

// NewOnce returns a Once that calls open at most once.
func NewOnce(open func(context.Context) (*Source, error)) *Once {
	return &Once{open: open}
}

// Get returns the Source, loading it on the first call. The context of the
// first call governs the load.
func (o *Once) Get(ctx context.Context) (*Source, error) {
	o.once.Do(func() {
		o.src, o.err = o.open(ctx)
	})
	return o.src, o.err
}
