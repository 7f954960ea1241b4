// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Loader engines.
const (
	EngineDuckDB = "duckdb"
	EngineCSV    = "csv"
)

// Supported file encodings.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin-1"
	EncodingWindows1252 = "windows-1252"
)

var (
	// ErrEmptyFile is returned when a file has no header row.
	ErrEmptyFile = errors.New("dataset: file has no header row")

	// ErrUnsupportedEncoding is returned for an encoding the loader cannot decode.
	ErrUnsupportedEncoding = errors.New("dataset: unsupported encoding")
)

// ReadOptions describes one delimited file.
type ReadOptions struct {
	Delimiter rune
	Encoding  string
}

// Loader reads a delimited file with a header row into a Table.
type Loader interface {
	Load(ctx context.Context, path string, opts ReadOptions) (*Table, error)
}

// NormalizeEncoding maps common spellings to the canonical encoding names.
func NormalizeEncoding(enc string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}
