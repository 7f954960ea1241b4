// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestCSVLoader_Basic(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "project.csv",
		"id,status,ecMaxContribution,title\n"+
			"101,signed,1500.5,\"Ocean, Lab\"\n"+
			"102,CLOSED,,\n")

	tbl, err := NewCSVLoader().Load(context.Background(), path, ReadOptions{Delimiter: ','})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if v, _ := tbl.Value(0, "title"); v != "Ocean, Lab" {
		t.Errorf("quoted title = %q", v)
	}
	if _, ok := tbl.Value(1, "ecMaxContribution"); ok {
		t.Error("empty cell should be NULL")
	}
}

func TestCSVLoader_SkipsBadLines(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "organization.csv",
		"projectID;order;name\n"+
			"101;1;CNRS\n"+
			"102;1;Too;Many;Fields\n"+
			"103;2\n")

	tbl, err := NewCSVLoader().Load(context.Background(), path, ReadOptions{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (long line skipped)", tbl.Len())
	}
	if v, _ := tbl.Value(1, "projectID"); v != "103" {
		t.Errorf("second row projectID = %q, want 103", v)
	}
	if _, ok := tbl.Value(1, "name"); ok {
		t.Error("short line should be padded with NULL")
	}
}

func TestCSVLoader_Latin1(t *testing.T) {
	t.Parallel()

	// "Société Générale" encoded as ISO-8859-1.
	path := writeFixture(t, "organization.csv", "name;country\nSoci\xe9t\xe9 G\xe9n\xe9rale;FR\n")

	tbl, err := NewCSVLoader().Load(context.Background(), path, ReadOptions{Delimiter: ';', Encoding: "latin1"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, _ := tbl.Value(0, "name"); v != "Société Générale" {
		t.Errorf("name = %q, want Société Générale", v)
	}
}

func TestCSVLoader_StripsUTF8BOM(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "project.csv", "\xef\xbb\xbfid,status\n1,SIGNED\n")

	tbl, err := NewCSVLoader().Load(context.Background(), path, ReadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !tbl.HasColumn("id") {
		t.Errorf("columns = %v, want id without BOM", tbl.Columns())
	}
}

func TestCSVLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		opts    ReadOptions
		wantErr error
	}{
		{"empty file", "", ReadOptions{}, ErrEmptyFile},
		{"unsupported encoding", "id\n1\n", ReadOptions{Encoding: "ebcdic"}, ErrUnsupportedEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFixture(t, "f.csv", tt.content)
			_, err := NewCSVLoader().Load(context.Background(), path, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCSVLoader_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewCSVLoader().Load(context.Background(), filepath.Join(t.TempDir(), "none.csv"), ReadOptions{})
	if err == nil || !strings.Contains(err.Error(), "failed to open") {
		t.Errorf("Load() error = %v, want open failure", err)
	}
}

func TestCSVLoader_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCSVLoader().read(ctx, strings.NewReader("id\n1\n"), "mem", ReadOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("read() error = %v, want context.Canceled", err)
	}
}

// countingContext counts Err calls.
type countingContext struct {
	context.Context
	calls int
}

func (c *countingContext) Err() error {
	c.calls++
	return c.Context.Err()
}

func TestCSVLoader_ChecksContextPerLinesRead(t *testing.T) {
	t.Parallel()

	// Every data line is too long and skipped, so no row is ever kept.
	var b strings.Builder
	b.WriteString("id,status\n")
	for i := 0; i < 100; i++ {
		b.WriteString("1,SIGNED,extra\n")
	}

	ctx := &countingContext{Context: context.Background()}
	tbl, err := NewCSVLoader().read(ctx, strings.NewReader(b.String()), "mem", ReadOptions{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
	if want := 101/ctxCheckInterval + 1; ctx.calls != want {
		t.Errorf("ctx.Err() calls = %d, want %d", ctx.calls, want)
	}
}

func TestNormalizeEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", EncodingUTF8},
		{"UTF8", EncodingUTF8},
		{"ISO-8859-1", EncodingLatin1},
		{"cp1252", EncodingWindows1252},
	}
	for _, tt := range tests {
		got, err := NormalizeEncoding(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("NormalizeEncoding(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
