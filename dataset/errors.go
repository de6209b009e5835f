// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned by ReadCSV when the path does not exist.
	// errors.Is(err, fs.ErrNotExist) also holds.
	ErrFileNotFound = errors.New("dataset: file not found")

	// ErrParse matches every *ParseError.
	ErrParse = errors.New("dataset: parse error")

	// ErrNotNumber: a field is not a decimal number.
	ErrNotNumber = errors.New("dataset: field is not a number")

	// ErrNotFinite: a field parsed to NaN or ±Inf.
	ErrNotFinite = errors.New("dataset: field is not finite")

	// ErrRaggedRow: a row's field count differs from the first data row.
	ErrRaggedRow = errors.New("dataset: ragged row")

	// ErrNoData: the input holds no data rows after the header.
	ErrNoData = errors.New("dataset: no data rows")
)

// ParseError locates a malformed input position (1-based line and column;
// Column is 0 when the error concerns the whole line).
type ParseError struct {
	Line   int
	Column int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
	}
	if e.Field != "" {
		return fmt.Sprintf("dataset: line %d, column %d (%q): %v", e.Line, e.Column, e.Field, e.Err)
	}

	return fmt.Sprintf("dataset: line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrParse for every ParseError; the cause matches via Unwrap.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// notFound keeps cause (an *fs.PathError) in the chain for fs.ErrNotExist.
func notFound(cause error) error {
	return fmt.Errorf("%w: %w", ErrFileNotFound, cause)
}
