// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(Config{Threads: 1, MaxMemory: "128MB"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBuildReadCSVQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		header []string
		opts   CSVOptions
		want   string
	}{
		{
			name:   "default delimiter",
			path:   "/data/project.csv",
			header: []string{"id", "status"},
			want:   `SELECT * FROM read_csv('/data/project.csv', delim=',', header=true, columns={'id': 'VARCHAR', 'status': 'VARCHAR'}, ignore_errors=true, null_padding=true, quote='"')`,
		},
		{
			name:   "semicolon and quoted path",
			path:   "/data/o'brien.csv",
			header: []string{"name"},
			opts:   CSVOptions{Delimiter: ';'},
			want:   `SELECT * FROM read_csv('/data/o''brien.csv', delim=';', header=true, columns={'name': 'VARCHAR'}, ignore_errors=true, null_padding=true, quote='"')`,
		},
		{
			name:   "repeated and blank header names",
			path:   "p.csv",
			header: []string{"id", "id", "", "it's"},
			want:   `SELECT * FROM read_csv('p.csv', delim=',', header=true, columns={'id': 'VARCHAR', 'id_1': 'VARCHAR', '_2': 'VARCHAR', 'it''s': 'VARCHAR'}, ignore_errors=true, null_padding=true, quote='"')`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := buildReadCSVQuery(tt.path, tt.header, tt.opts); got != tt.want {
				t.Errorf("buildReadCSVQuery() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	db := setupTestDB(t)
	path := writeFile(t, "organization.csv",
		"projectID;order;geolocation;name\n"+
			"101;1;48.85,2.35;CNRS\n"+
			"101;2;;\n")

	cols, rows, err := db.ReadCSV(context.Background(), path, CSVOptions{Delimiter: ';'})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	wantCols := []string{"projectID", "order", "geolocation", "name"}
	if len(cols) != len(wantCols) {
		t.Fatalf("columns = %v, want %v", cols, wantCols)
	}
	for i := range wantCols {
		if cols[i] != wantCols[i] {
			t.Errorf("column %d = %q, want %q", i, cols[i], wantCols[i])
		}
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if !rows[0][2].Valid || rows[0][2].String != "48.85,2.35" {
		t.Errorf("geolocation = %+v, want 48.85,2.35", rows[0][2])
	}
	if rows[1][2].Valid {
		t.Errorf("empty geolocation should be NULL, got %+v", rows[1][2])
	}
}

func TestReadCSV_RaggedLines(t *testing.T) {
	db := setupTestDB(t)
	path := writeFile(t, "organization.csv",
		"projectID;organisationID;order;name;country;geolocation\n"+
			"P1;O1;1;Uni A;FR;48.85,2.35\n"+
			"P2;O2;1;Extra;DE;1,2;boom\n"+
			"P3;O3;1\n"+
			"P4;O4;1;\"Quoted; Name\";IT;41.9,12.5\n")

	cols, rows, err := db.ReadCSV(context.Background(), path, CSVOptions{Delimiter: ';'})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(cols) != 6 {
		t.Fatalf("columns = %v, want the 6 header names", cols)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 (long line skipped)", len(rows))
	}

	ids := []string{rows[0][0].String, rows[1][0].String, rows[2][0].String}
	if ids[0] != "P1" || ids[1] != "P3" || ids[2] != "P4" {
		t.Errorf("project IDs = %v, want [P1 P3 P4]", ids)
	}
	if rows[1][3].Valid || rows[1][5].Valid {
		t.Errorf("short row should be padded with NULL, got %+v", rows[1])
	}
	if rows[2][3].String != "Quoted; Name" || rows[2][4].String != "IT" {
		t.Errorf("quoted row = %+v", rows[2])
	}
}

func TestReadCSV_EmptyFile(t *testing.T) {
	db := setupTestDB(t)
	cols, rows, err := db.ReadCSV(context.Background(), writeFile(t, "empty.csv", ""), CSVOptions{})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if cols != nil || rows != nil {
		t.Errorf("empty file = %v / %v, want no columns", cols, rows)
	}
}

func TestReadCSV_MissingFile(t *testing.T) {
	db := setupTestDB(t)
	_, _, err := db.ReadCSV(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), CSVOptions{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadCSV_Closed(t *testing.T) {
	db, err := New(Config{Threads: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	_, _, err = db.ReadCSV(context.Background(), "x.csv", CSVOptions{})
	if !errors.Is(err, ErrClosed) {
		t.Errorf("ReadCSV after Close = %v, want ErrClosed", err)
	}
}
