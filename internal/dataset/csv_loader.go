// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package dataset

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tomtom215/projectatlas/internal/logging"
)

// CSVLoader reads files with encoding/csv, decoding legacy single-byte
// encodings through golang.org/x/text. Malformed lines and lines with more
// fields than the header are skipped; short lines are padded with NULL.
type CSVLoader struct{}

// NewCSVLoader creates a CSVLoader.
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

// Load implements Loader.
func (l *CSVLoader) Load(ctx context.Context, path string, opts ReadOptions) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return l.read(ctx, f, path, opts)
}

// ctxCheckInterval is how many lines are read between cancellation checks.
const ctxCheckInterval = 4096

func (l *CSVLoader) read(ctx context.Context, r io.Reader, name string, opts ReadOptions) (*Table, error) {
	dec, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, dec))
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}

	var (
		rows    [][]sql.NullString
		skipped int
	)
	for line := 0; ; line++ {
		if line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if len(rec) > len(header) {
			skipped++
			continue
		}

		row := make([]sql.NullString, len(header))
		for i, v := range rec {
			row[i] = sql.NullString{String: v, Valid: v != ""}
		}
		rows = append(rows, row)
	}

	if skipped > 0 {
		logging.Debug().Str("file", name).Int("skipped_lines", skipped).Msg("Skipped malformed lines")
	}
	return NewTable(header, rows)
}

// decoderFor returns a decoder producing UTF-8. A UTF-8 byte order mark is
// stripped.
func decoderFor(enc string) (transform.Transformer, error) {
	name, err := NormalizeEncoding(enc)
	if err != nil {
		return nil, err
	}

	var e encoding.Encoding
	switch name {
	case EncodingLatin1:
		e = charmap.ISO8859_1
	case EncodingWindows1252:
		e = charmap.Windows1252
	default:
		return unicode.BOMOverride(encoding.Nop.NewDecoder()), nil
	}
	return e.NewDecoder(), nil
}
