// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvpca/matrix"
)

// ComponentHeader returns pc1..pcN.
func ComponentHeader(n int) []string {
	h := make([]string, n)
	for k := range h {
		h[k] = "pc" + strconv.Itoa(k+1)
	}

	return h
}

// WriteCSV writes header (when non-nil) and then every row of m, formatting
// values with strconv.FormatFloat(v, 'g', -1, 64) so they read back exactly.
//
// Errors: matrix.ErrNilMatrix, a header/width mismatch, or the writer's error.
func WriteCSV(w io.Writer, m matrix.Matrix, header []string) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("dataset: write: %w", err)
	}
	if header != nil && len(header) != m.Cols() {
		return fmt.Errorf("dataset: write: header has %d names for %d columns: %w",
			len(header), m.Cols(), matrix.ErrDimensionMismatch)
	}

	cw := csv.NewWriter(w)
	if header != nil {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("dataset: write: %w", err)
		}
	}
	record := make([]string, m.Cols())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("dataset: write: %w", err)
			}
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("dataset: write: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataset: write: %w", err)
	}

	return nil
}
