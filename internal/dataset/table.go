// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package dataset

import (
	"database/sql"
	"fmt"
)

// Table is an immutable, column-addressed view of one CSV file. Cells are
// raw text; a NULL cell (Valid == false) means the source value was empty.
//
// A Table never changes after construction, so it can be shared by any
// number of concurrent pipeline runs.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]sql.NullString
}

// NewTable builds a Table. Rows are copied; short rows are padded with NULL
// cells and long rows are rejected. Duplicate column names resolve to the
// first occurrence.
func NewTable(columns []string, rows [][]sql.NullString) (*Table, error) {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]sql.NullString, len(rows)),
	}
	for i, c := range columns {
		if _, dup := t.index[c]; !dup {
			t.index[c] = i
		}
	}
	for i, r := range rows {
		if len(r) > len(columns) {
			return nil, fmt.Errorf("row %d has %d cells for %d columns", i, len(r), len(columns))
		}
		row := make([]sql.NullString, len(columns))
		copy(row, r)
		t.rows[i] = row
	}
	return t, nil
}

// Columns returns a copy of the column names in file order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether the table has a column named name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Value returns the cell at (row, column). ok is false when the column is
// absent or the cell is NULL.
func (t *Table) Value(row int, column string) (value string, ok bool) {
	i, found := t.index[column]
	if !found {
		return "", false
	}
	cell := t.rows[row][i]
	return cell.String, cell.Valid
}

// Column returns an accessor for one column, avoiding a map lookup per row.
// The accessor of a missing column reports every cell as NULL.
func (t *Table) Column(name string) ColumnReader {
	i, ok := t.index[name]
	if !ok {
		return ColumnReader{idx: -1}
	}
	return ColumnReader{table: t, idx: i}
}

// ColumnReader reads one column of a Table.
type ColumnReader struct {
	table *Table
	idx   int
}

// Present reports whether the column exists in the table.
func (c ColumnReader) Present() bool {
	return c.idx >= 0
}

// At returns the cell in row.
func (c ColumnReader) At(row int) (string, bool) {
	if c.idx < 0 {
		return "", false
	}
	cell := c.table.rows[row][c.idx]
	return cell.String, cell.Valid
}
