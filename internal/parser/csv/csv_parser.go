// Package csv reads a delimited input file fully into memory as a header plus
// rows addressable by column name. Lookups of unknown columns yield an empty
// string rather than an error, and malformed records are reported and skipped.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"ghanarepro/internal/config"
	"ghanarepro/internal/datasource"
)

// Options configures the CSV reader. The zero value reads comma-separated
// input verbatim.
type Options struct {
	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune

	// TrimSpace trims leading/trailing spaces from each field value.
	TrimSpace bool

	// LazyQuotes relaxes quote handling in encoding/csv: a stray quote in an
	// unquoted field is kept as a literal character.
	LazyQuotes bool

	// HeaderMap renames source headers after normalization (e.g. a vendor
	// column name to the canonical "COUNTRY").
	HeaderMap map[string]string
}

// OptionsFrom builds Options from a parser options bag. Recognized keys:
// comma (string), trim_space (bool), lazy_quotes (bool, default true),
// header_map (object).
func OptionsFrom(o config.Options) Options {
	return Options{
		Comma:      o.Rune("comma", ','),
		TrimSpace:  o.Bool("trim_space", false),
		LazyQuotes: o.Bool("lazy_quotes", true),
		HeaderMap:  o.StringMap("header_map"),
	}
}

// Table is a parsed CSV file.
type Table struct {
	Header []string
	Rows   []Row

	// Skipped counts records dropped because encoding/csv could not parse them.
	Skipped int

	index map[string]int
}

// Row is a single data record. Line is the 1-based line number in the
// source where the record starts.
type Row struct {
	Line   int
	Fields []string

	t *Table
}

// Get returns the value of column col, or "" when the column does not exist
// or the record is shorter than the header.
func (r Row) Get(col string) string {
	if r.t == nil {
		return ""
	}
	idx, ok := r.t.index[col]
	if !ok || idx >= len(r.Fields) {
		return ""
	}
	return r.Fields[idx]
}

// Has reports whether the table header contains col.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// ReadTable opens src and parses it with Parse. onError, when non-nil,
// receives every record-level parse error.
func ReadTable(ctx context.Context, src datasource.Source, opt Options, onError func(line int, err error)) (*Table, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer rc.Close()

	return Parse(ctx, rc, opt, onError)
}

// Parse reads all of r. A leading byte-order mark is tolerated. Ragged
// records are accepted as-is; malformed records are skipped and reported.
// Empty input yields a table with no header and no rows.
func Parse(ctx context.Context, r io.Reader, opt Options, onError func(line int, err error)) (*Table, error) {
	cr := csv.NewReader(NewBOMReader(r))
	if opt.Comma != 0 {
		cr.Comma = opt.Comma
	}
	cr.LazyQuotes = opt.LazyQuotes
	cr.FieldsPerRecord = -1

	h, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return &Table{index: map[string]int{}}, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	t := &Table{Header: normalizeHeaders(h, opt)}
	t.index = make(map[string]int, len(t.Header))
	for i, c := range t.Header {
		// Later duplicates win, matching a dict-per-row reader.
		t.index[c] = i
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := cr.Read()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, fmt.Errorf("read csv: %w", err)
			}
			t.Skipped++
			if onError != nil {
				onError(pe.StartLine, fmt.Errorf("parse: %w", err))
			}
			continue
		}
		line, _ := cr.FieldPos(0)

		fields := make([]string, len(rec))
		for i, v := range rec {
			if opt.TrimSpace {
				v = strings.TrimSpace(v)
			}
			fields[i] = v
		}
		t.Rows = append(t.Rows, Row{Line: line, Fields: fields, t: t})
	}
}

// normalizeHeaders strips a BOM left on the first cell, trims surrounding
// space, applies Unicode NFC and then HeaderMap renames.
func normalizeHeaders(h []string, opt Options) []string {
	res := StripHeaderBOM(append([]string(nil), h...))
	for i, col := range res {
		c := norm.NFC.String(strings.TrimSpace(col))
		if m, ok := opt.HeaderMap[c]; ok {
			c = m
		}
		res[i] = c
	}
	return res
}
