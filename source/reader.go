package source

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Reader yields header-mapped rows from a delimited input stream. The first
// record is consumed as the header on the first Read call.
type Reader struct {
	csv    *csv.Reader
	header []string
}

// Option configures a Reader.
type Option func(*Reader)

// WithDelimiter sets the field delimiter (default comma).
func WithDelimiter(delimiter rune) Option {
	return func(r *Reader) {
		r.csv.Comma = delimiter
	}
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	cr := csv.NewReader(r)
	// Rows with a different field count than the header are surfaced as
	// row-level errors by Read, not silently truncated.
	cr.FieldsPerRecord = 0

	reader := &Reader{csv: cr}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Read returns the next row, or io.EOF when the input is exhausted. A
// malformed record is returned as an error for that row; subsequent calls
// continue with the next record.
func (r *Reader) Read() (Row, error) {
	if r.header == nil {
		header, err := r.csv.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		r.header = header
	}

	record, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}

	row := make(Row, len(r.header))
	for i, field := range r.header {
		row[field] = record[i]
	}
	return row, nil
}
