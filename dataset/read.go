// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpca/matrix"
)

// ReadCSV opens path and decodes it with DecodeCSV.
//
// Errors:
//   - ErrFileNotFound (also fs.ErrNotExist) for a missing path.
//   - *ParseError from DecodeCSV.
//   - other os errors (permissions, directories) wrapped with the path.
func ReadCSV(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(err)
		}
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeCSV(f)
}

// DecodeCSV reads a header line followed by rows of decimal values.
//
// Implementation:
//   - Stage 1: the first record is the header and is discarded.
//   - Stage 2: each further record is trimmed field by field and parsed with
//     strconv.ParseFloat; blank lines are skipped by encoding/csv.
//   - Stage 3: every row must match the first data row's width.
//
// Errors (all *ParseError, matching ErrParse):
//   - ErrNotNumber, ErrNotFinite (NaN, ±Inf), ErrRaggedRow, ErrNoData,
//     or an encoding/csv syntax error.
//
// Complexity: O(rows·cols), one pass, data buffered once.
func DecodeCSV(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	// header
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Line: 1, Err: ErrNoData}
		}
		return nil, csvError(err)
	}
	headerLine, _ := cr.FieldPos(0)

	var (
		data  []float64
		cols  int
		rows  int
		line  int
		field string
		v     float64
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue // whitespace-only line
		}
		line, _ = cr.FieldPos(0)
		if rows == 0 {
			cols = len(record)
		} else if len(record) != cols {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: %d fields, want %d", ErrRaggedRow, len(record), cols)}
		}
		for j, raw := range record {
			field = strings.TrimSpace(raw)
			v, err = strconv.ParseFloat(field, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return nil, &ParseError{Line: line, Column: j + 1, Field: field, Err: ErrNotNumber}
			}
			// ParseFloat accepts "NaN", "Inf" and overflows to ±Inf
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ParseError{Line: line, Column: j + 1, Field: field, Err: ErrNotFinite}
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, &ParseError{Line: headerLine + 1, Err: ErrNoData}
	}

	return matrix.NewDenseFrom(rows, cols, data)
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Column: pe.Column, Err: pe.Err}
	}

	return fmt.Errorf("dataset: read: %w", err)
}
