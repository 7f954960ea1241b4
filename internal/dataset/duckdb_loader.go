// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package dataset

import (
	"context"
	"fmt"

	"github.com/tomtom215/projectatlas/internal/database"
)

// DuckDBLoader reads files through DuckDB's read_csv. It only reads UTF-8;
// legacy encodings go through CSVLoader.
type DuckDBLoader struct {
	db *database.DB
}

// NewDuckDBLoader creates a loader backed by db. The caller owns db.
func NewDuckDBLoader(db *database.DB) *DuckDBLoader {
	return &DuckDBLoader{db: db}
}

// Load implements Loader.
func (l *DuckDBLoader) Load(ctx context.Context, path string, opts ReadOptions) (*Table, error) {
	enc, err := NormalizeEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if enc != EncodingUTF8 {
		return nil, fmt.Errorf("%w: duckdb engine reads utf-8 only, got %s", ErrUnsupportedEncoding, enc)
	}

	columns, rows, err := l.db.ReadCSV(ctx, path, database.CSVOptions{Delimiter: opts.Delimiter})
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return NewTable(columns, rows)
}
