// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvpca/matrix"
)

// Project returns X·V: row i holds the coordinates of sample i along each
// column of V. X is rows×f and V must be f×k.
//
// Errors: matrix.ErrNilMatrix, ErrShapeMismatch (X.Cols != V.Rows).
//
// Complexity: O(rows·f·k).
func Project(X, V matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	start := time.Now()

	if err := matrix.ValidateMulCompatible(X, V); err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) {
			err = fmt.Errorf("%w: data has %d features, components have %d rows: %w",
				ErrShapeMismatch, X.Cols(), V.Rows(), err)
		}
		return nil, pcaErrorf(opProject, err)
	}
	Y, err := matrix.Mul(X, V)
	if err != nil {
		return nil, pcaErrorf(opProject, err)
	}
	o.stageDone(StageProject, start, shapeFields(Y)...)

	return Y, nil
}

// Reorder returns a copy of V whose column k is V[:, ranking[k]].
//
// Errors: matrix.ErrNilMatrix, ErrShapeMismatch (len(ranking) != V.Cols()),
// ErrInvalidRanking (duplicate or out-of-range index).
func Reorder(V matrix.Matrix, ranking []int) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(V); err != nil {
		return nil, pcaErrorf(opReorder, err)
	}
	if len(ranking) != V.Cols() {
		return nil, pcaErrorf(opReorder, fmt.Errorf("%w: ranking has %d entries, components have %d columns",
			ErrShapeMismatch, len(ranking), V.Cols()))
	}
	if err := matrix.ValidatePermutation(ranking, V.Cols()); err != nil {
		return nil, pcaErrorf(opReorder, fmt.Errorf("%w: %w", ErrInvalidRanking, err))
	}
	out, err := matrix.PermuteCols(V, ranking)
	if err != nil {
		return nil, pcaErrorf(opReorder, err)
	}

	return out, nil
}
