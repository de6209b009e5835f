// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical building blocks of PCA: column means, column
//     centering and the Gram cross-product XᵀX.
//   - Keep tight loops centralized in ew* where it improves reuse and consistency.
//
// Exposed API:
//   - ColumnMeans(X)           -> means          // Σ_i X[i,j] / r
//   - CenterColumns(X)         -> (Xc, means)    // subtract per-column mean
//   - CrossProduct(X, workers) -> XᵀX            // symmetric c×c, optional fan-out
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops; plain linear sums (no
//     pairwise or compensated summation).
//   - CrossProduct gives every output cell to exactly one worker and sums rows
//     in ascending order, so the parallel result is bitwise equal to the serial one.

package matrix

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// Operation name constants for unified error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
)

// ColumnMeans returns mu[j] = Σ_i X[i,j] / r.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := d.r, d.c
	means := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the column means.
// Implementation:
//   - Stage 1: ColumnMeans(X).
//   - Stage 2: ewBroadcastSubCols to build the centered copy.
//
// Errors:
//   - ErrNilMatrix from validation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) means).
//
// AI-Hints:
//   - Reuse the returned means to un-center later or to transform new samples.
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// CrossProduct returns G = XᵀX (c×c) for an r×c matrix X.
// MAIN DESCRIPTION:
//   - The Gram matrix of the columns of X; with X centered, G/r is the
//     population covariance.
//
// Implementation:
//   - Stage 1: transpose X so every column becomes a contiguous row.
//   - Stage 2: for each output row i, compute dot(col_i, col_j) for j ≥ i and
//     mirror into [j,i]. Rows are handed to a conc pool bounded by workers.
//
// Inputs:
//   - X: r×c matrix.
//   - workers: 0 or 1 runs inline; > 1 bounds the goroutine fan-out;
//     any negative value uses runtime.NumCPU().
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - Output cell (i,j), i ≤ j, is written only by task i, accumulating k = 0..r-1
//     in order. Results do not depend on workers.
//
// Complexity:
//   - Time O(r*c^2 / 2), Space O(r*c + c^2).
func CrossProduct(X Matrix, workers int) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opCrossProduct, err)
	}
	T, err := Transpose(X)
	if err != nil {
		return nil, matrixErrorf(opCrossProduct, err)
	}
	cols := T.(*Dense)
	c, r := cols.r, cols.c
	G, err := NewDense(c, c)
	if err != nil {
		return nil, matrixErrorf(opCrossProduct, err)
	}

	row := func(i int) {
		ci := cols.data[i*r : (i+1)*r]
		var j, k int
		var acc float64
		for j = i; j < c; j++ {
			cj := cols.data[j*r : (j+1)*r]
			acc = ZeroSum
			for k = 0; k < r; k++ {
				acc += ci[k] * cj[k]
			}
			G.data[i*c+j], G.data[j*c+i] = acc, acc
		}
	}

	if workers < 0 {
		workers = runtime.NumCPU()
	}
	if workers <= 1 || c == 1 {
		for i := 0; i < c; i++ {
			row(i)
		}
		return G, nil
	}

	p := pool.New().WithMaxGoroutines(workers)
	for i := 0; i < c; i++ {
		p.Go(func() { row(i) })
	}
	p.Wait()

	return G, nil
}
