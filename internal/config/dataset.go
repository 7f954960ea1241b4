// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/projectatlas/internal/database"
	"github.com/tomtom215/projectatlas/internal/dataset"
	"github.com/tomtom215/projectatlas/internal/logging"
)

// OpenSource loads both registry files with the configured engine. Tables
// are materialized in memory, so the DuckDB connection used by the duckdb
// engine is closed before returning.
func (d DatasetConfig) OpenSource(ctx context.Context) (*dataset.Source, error) {
	start := time.Now()
	files := d.Files()

	var loader dataset.Loader
	switch d.Engine {
	case dataset.EngineCSV:
		loader = dataset.NewCSVLoader()
	case dataset.EngineDuckDB, "":
		db, err := database.New(d.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("open duckdb: %w", err)
		}
		defer func() {
			if cerr := db.Close(); cerr != nil {
				logging.Warn().Err(cerr).Msg("Error closing DuckDB after load")
			}
		}()
		loader = dataset.NewDuckDBLoader(db)
	default:
		return nil, fmt.Errorf("unknown dataset engine %q", d.Engine)
	}

	src, err := dataset.Open(ctx, loader, files)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("engine", d.Engine).
		Str("projects", files.ProjectPath).
		Int("project_rows", src.Projects().Len()).
		Str("organizations", files.OrganizationPath).
		Int("organization_rows", src.Organizations().Len()).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")
	return src, nil
}
