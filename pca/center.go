// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvpca/matrix"
)

// Center subtracts each column's mean from every entry of that column.
// Returns the centered copy and the means; X is not modified.
//
// Errors: matrix.ErrNilMatrix.
//
// Complexity: O(rows·cols).
func Center(X matrix.Matrix, opts ...Option) (matrix.Matrix, []float64, error) {
	o := gatherOptions(opts...)
	start := time.Now()

	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, nil, pcaErrorf(opCenter, err)
	}
	o.stageDone(StageCenter, start, shapeFields(X)...)

	return Xc, means, nil
}

// Covariance computes S = (1/rows)·Xcᵀ·Xc for already-centered data.
// The result is exactly symmetric. Uses the population normalization.
//
// Implementation:
//   - Stage 1: optional centering check (WithCenteringCheck).
//   - Stage 2: XᵀX via matrix.CrossProduct with WithWorkers fan-out.
//   - Stage 3: scale by 1/rows.
//
// Errors: matrix.ErrNilMatrix, ErrNotCentered.
//
// Complexity: O(rows·cols²/2).
func Covariance(Xc matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	start := time.Now()

	if err := matrix.ValidateNotNil(Xc); err != nil {
		return nil, pcaErrorf(opCovariance, err)
	}
	if o.checkCentered {
		if err := checkCentered(Xc, o.centerTol); err != nil {
			return nil, pcaErrorf(opCovariance, err)
		}
	}

	G, err := matrix.CrossProduct(Xc, o.workers)
	if err != nil {
		return nil, pcaErrorf(opCovariance, err)
	}
	S, err := matrix.Scale(G, 1/float64(Xc.Rows()))
	if err != nil {
		return nil, pcaErrorf(opCovariance, err)
	}
	o.stageDone(StageCovariance, start, shapeFields(Xc)...)

	return S, nil
}

// checkCentered rejects a column mean larger than tol·max(1, max|X|).
func checkCentered(X matrix.Matrix, tol float64) error {
	means, err := matrix.ColumnMeans(X)
	if err != nil {
		return err
	}
	scale := 1.0
	var i, j int
	var v float64
	for i = 0; i < X.Rows(); i++ {
		for j = 0; j < X.Cols(); j++ {
			if v, err = X.At(i, j); err != nil {
				return err
			}
			scale = math.Max(scale, math.Abs(v))
		}
	}
	for j, mu := range means {
		if math.Abs(mu) > tol*scale {
			return fmt.Errorf("%w: column %d has mean %g", ErrNotCentered, j, mu)
		}
	}

	return nil
}
