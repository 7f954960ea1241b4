// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package dataset

import (
	"database/sql"
	"testing"
)

func ns(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

func TestNewTable(t *testing.T) {
	t.Parallel()

	rows := [][]sql.NullString{
		{ns("1"), ns("signed")},
		{ns("2")},
	}
	tbl, err := NewTable([]string{"id", "status"}, rows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
	if v, ok := tbl.Value(0, "status"); !ok || v != "signed" {
		t.Errorf("Value(0, status) = %q, %v", v, ok)
	}
	if _, ok := tbl.Value(1, "status"); ok {
		t.Error("short row should be padded with NULL")
	}
	if _, ok := tbl.Value(0, "missing"); ok {
		t.Error("missing column should report not ok")
	}

	// Source rows must not alias the table.
	rows[0][1] = ns("closed")
	if v, _ := tbl.Value(0, "status"); v != "signed" {
		t.Errorf("table changed with source rows: %q", v)
	}
}

func TestNewTable_RejectsLongRow(t *testing.T) {
	t.Parallel()

	_, err := NewTable([]string{"id"}, [][]sql.NullString{{ns("1"), ns("extra")}})
	if err == nil {
		t.Fatal("expected error for row longer than header")
	}
}

func TestTable_DuplicateColumnUsesFirst(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable([]string{"id", "id"}, [][]sql.NullString{{ns("a"), ns("b")}})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if v, _ := tbl.Value(0, "id"); v != "a" {
		t.Errorf("Value(0, id) = %q, want a", v)
	}
}

func TestTable_ColumnReader(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable([]string{"topic"}, [][]sql.NullString{{ns("HORIZON")}, {{}}})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	col := tbl.Column("topic")
	if !col.Present() {
		t.Fatal("topic column should be present")
	}
	if v, ok := col.At(0); !ok || v != "HORIZON" {
		t.Errorf("At(0) = %q, %v", v, ok)
	}
	if _, ok := col.At(1); ok {
		t.Error("At(1) should be NULL")
	}

	missing := tbl.Column("sub-fund")
	if missing.Present() {
		t.Error("sub-fund should not be present")
	}
	if _, ok := missing.At(0); ok {
		t.Error("missing column should read as NULL")
	}
}

func TestTable_ColumnsIsCopy(t *testing.T) {
	t.Parallel()

	tbl, _ := NewTable([]string{"a", "b"}, nil)
	cols := tbl.Columns()
	cols[0] = "z"
	if !tbl.HasColumn("a") || tbl.Columns()[0] != "a" {
		t.Error("Columns() must return a copy")
	}
}
