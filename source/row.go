// Package source reads delimited survey files into header-mapped rows.
package source

import "fmt"

// MissingFieldError reports a required column that is absent from a row.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Row is a single input record keyed by header column name.
type Row map[string]string

// Get returns the value of an optional column. Absent columns yield the
// empty string, so callers treat missing and empty uniformly.
func (r Row) Get(field string) string {
	return r[field]
}

// Require returns the value of a required column, failing with a
// MissingFieldError when the column was not present in the header.
func (r Row) Require(field string) (string, error) {
	value, ok := r[field]
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	return value, nil
}
