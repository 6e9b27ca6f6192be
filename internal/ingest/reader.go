// Package ingest converts raw uploaded CSV rows into typed, defaulted records.
// The two supported shapes (stock, sales) are declarative Schema instances over
// one generic row-normalization routine; every field names its column, target
// type and fallback policy.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedStream reports that the CSV itself cannot be parsed as tabular
// data. It aborts the whole upload — structural failures are never smoothed
// over with per-field defaults.
var ErrMalformedStream = errors.New("malformed csv stream")

// Row is one raw CSV record keyed by header column name. Missing columns are
// simply absent; field fallbacks handle them.
type Row map[string]string

// Reader wraps encoding/csv with header-based column lookup. It consumes the
// underlying stream once and yields rows in input order.
type Reader struct {
	cr     *csv.Reader
	header []string
}

// NewReader reads the header row. An empty or structurally broken input is a
// stream-level failure.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	// Ragged rows are tolerated: short rows leave cells absent and the field
	// fallbacks take over. Quoting errors still abort.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformedStream, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return &Reader{cr: cr, header: header}, nil
}

// Next returns the next row, io.EOF at end of input, or ErrMalformedStream if
// the stream breaks mid-file.
func (r *Reader) Next() (Row, error) {
	rec, err := r.cr.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStream, err)
	}
	row := make(Row, len(r.header))
	for i, col := range r.header {
		if i < len(rec) {
			row[col] = rec[i]
		}
	}
	return row, nil
}
