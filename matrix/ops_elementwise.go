// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Centralize element-wise micro-kernels (broadcast subtraction, approximate
//     equality) used by the statistics layer and by tests.
//   - Keep one canonical loop per concern.

package matrix

import (
	"fmt"
	"math"
)

const (
	opBroadcastSubCols = "BroadcastSubCols"
	opAllClose         = "AllClose"
)

// ewBroadcastSubCols returns Y[i,j] = X[i,j] - colMeans[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(colMeans) != Cols).
// Complexity: O(r*c).
func ewBroadcastSubCols(X Matrix, colMeans []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	if err := ValidateVecLen(colMeans, X.Cols()); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	r, c := d.r, d.c
	Y, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			Y.data[base+j] = d.data[base+j] - colMeans[j]
		}
	}

	return Y, nil
}

// SubtractColumnVector returns X with mu[j] subtracted from every entry of column j.
// It is the public face of the broadcast kernel, used to re-apply fitted means
// to new data.
func SubtractColumnVector(X Matrix, mu []float64) (Matrix, error) {
	return ewBroadcastSubCols(X, mu)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Negative tolerances are normalized to their absolute values.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if math.IsNaN(rtol) || math.IsNaN(atol) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("tolerance: %w", ErrNaNInf))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range da.data {
		if math.Abs(da.data[k]-db.data[k]) > atol+rtol*math.Abs(db.data[k]) {
			return false, nil
		}
	}

	return true, nil
}
