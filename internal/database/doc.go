// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package database wraps an embedded, in-memory DuckDB engine used to read
// the registry CSV files.
//
// DuckDB's read_csv handles quoting, delimiter selection and malformed-line
// skipping. All columns are read as VARCHAR so that type coercion stays in
// the normalizer, where the coercion rules live.
//
//	db, err := database.New(database.Config{MaxMemory: "256MB"})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//	cols, rows, err := db.ReadCSV(ctx, "organizations.csv", database.CSVOptions{Delimiter: ';'})
package database
