package ingest

import (
	"io"
	"strings"
)

// Field binds one CSV column to a typed setter on the record. The setter owns
// the field's parse function and fallback value.
type Field[T any] struct {
	Column string
	Set    func(rec *T, raw string)
}

// Schema is the declarative description of one CSV shape. Normalizing a row is
// the same generic loop for every shape; only the field table differs.
type Schema[T any] struct {
	fields []Field[T]
}

func NewSchema[T any](fields ...Field[T]) Schema[T] {
	return Schema[T]{fields: fields}
}

// Normalize converts one raw row into a typed record. It is a pure function of
// the row (and the processing date): normalizing the same row twice yields
// identical records.
func (s Schema[T]) Normalize(row Row) T {
	var rec T
	for _, f := range s.fields {
		f.Set(&rec, strings.TrimSpace(row[f.Column]))
	}
	return rec
}

// Stream returns a lazy, input-ordered sequence of normalized records. It
// consumes r once and is not restartable.
func (s Schema[T]) Stream(r io.Reader) (*Stream[T], error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	return &Stream[T]{reader: reader, schema: s}, nil
}

// Stream yields one normalized record per input row.
type Stream[T any] struct {
	reader *Reader
	schema Schema[T]
}

// Next returns the next record, io.EOF when the input is exhausted, or
// ErrMalformedStream when the underlying CSV breaks.
func (st *Stream[T]) Next() (T, error) {
	var zero T
	row, err := st.reader.Next()
	if err != nil {
		return zero, err
	}
	return st.schema.Normalize(row), nil
}

// ReadAll drains the stream. On a stream error the records read so far are
// discarded — a malformed stream aborts the whole operation.
func (st *Stream[T]) ReadAll() ([]T, error) {
	var out []T
	for {
		rec, err := st.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}
