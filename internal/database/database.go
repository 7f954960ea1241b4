// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package database

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	_ "github.com/duckdb/duckdb-go/v2" // DuckDB driver registration
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tomtom215/projectatlas/internal/logging"
)

// ErrClosed is returned by operations on a closed DB.
var ErrClosed = errors.New("database: closed")

// Config tunes the embedded DuckDB engine.
type Config struct {
	// Threads caps DuckDB worker threads. Zero uses runtime.NumCPU().
	Threads int
	// MaxMemory is a DuckDB memory limit such as "512MB".
	MaxMemory string
}

// CSVOptions describes how a delimited file is read.
type CSVOptions struct {
	Delimiter rune
}

// DB is an in-memory DuckDB instance used as a CSV reader. It holds no
// tables of its own; every query reads straight from the file.
type DB struct {
	mu     sync.Mutex
	conn   *sql.DB
	closed bool
}

// New opens an in-memory DuckDB engine.
func New(cfg Config) (*DB, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "512MB"
	}

	// Auto-install is disabled so a restricted network never stalls startup.
	connStr := fmt.Sprintf(":memory:?threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		threads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	if err := conn.Ping(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	logging.Debug().Int("threads", threads).Str("max_memory", maxMemory).Msg("DuckDB engine opened")
	return &DB{conn: conn}, nil
}

// ReadCSV reads a delimited file with a header row. Every column is read as
// text and empty cells are NULL. The schema is pinned to the header, so a
// line with more fields than the header is skipped rather than widening the
// table, and a short line is padded with NULL. A file with no header line
// yields no columns.
func (db *DB) ReadCSV(ctx context.Context, path string, opts CSVOptions) ([]string, [][]sql.NullString, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil, nil, ErrClosed
	}

	header, err := readHeader(path, opts.Delimiter)
	if err != nil {
		return nil, nil, err
	}
	if len(header) == 0 {
		return nil, nil, nil
	}

	rows, err := db.conn.QueryContext(ctx, buildReadCSVQuery(path, header, opts))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer closeWithLog(rows, "rows")

	var out [][]sql.NullString
	for rows.Next() {
		cells := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row %d of %s: %w", len(out)+1, path, err)
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate %s: %w", path, err)
	}

	return header, out, nil
}

// readHeader returns the first record of path, or nil for an empty file.
// A UTF-8 byte order mark is dropped.
func readHeader(path string, delim rune) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer closeWithLog(f, "file")

	cr := csv.NewReader(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if delim != 0 {
		cr.Comma = delim
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	return header, nil
}

// Close releases the engine.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil
	}
	db.closed = true
	return db.conn.Close()
}

// buildReadCSVQuery renders the read_csv call. Table function arguments
// cannot be bound as parameters, so literals are quoted here. The explicit
// columns struct turns off schema sniffing; DuckDB needs unique keys, so
// repeated or blank header names get a positional suffix.
func buildReadCSVQuery(path string, header []string, opts CSVOptions) string {
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}

	seen := make(map[string]bool, len(header))
	cols := make([]string, len(header))
	for i, name := range header {
		key := name
		if key == "" || seen[key] {
			key = name + "_" + strconv.Itoa(i)
		}
		for seen[key] {
			key += "_"
		}
		seen[key] = true
		cols[i] = quoteLiteral(key) + ": 'VARCHAR'"
	}

	return fmt.Sprintf(
		"SELECT * FROM read_csv(%s, delim=%s, header=true, columns={%s}, ignore_errors=true, null_padding=true, quote='\"')",
		quoteLiteral(path), quoteLiteral(string(delim)), strings.Join(cols, ", "))
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
