// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpca/matrix"
)

// Decompose computes the eigendecomposition of a square symmetric matrix S.
//
// Implementation:
//   - Stage 1: reject nil or non-square input with ErrShapeMismatch.
//   - Stage 2: symmetrize as (S+Sᵀ)/2 so solvers see exact symmetry.
//   - Stage 3: run the selected solver (WithSolver):
//     SolverJacobi: matrix.Eigen with tolerance WithTolerance·‖S‖_F
//     and a rotation cap from WithMaxRotations (or 100·n², floored at 100);
//     SolverGonum: gonum mat.EigenSym.
//
// Returns eigenvalues in solver order, with Vectors[:, i] pairing Values[i].
// Every eigenvector has unit length and the set is orthonormal.
//
// Errors:
//   - ErrShapeMismatch (wrapping matrix.ErrNonSquare) for non-square S.
//   - ErrNoConvergence when the solver gives up.
//
// Complexity: O(n³) per sweep-equivalent, Space O(n²).
func Decompose(S matrix.Matrix, opts ...Option) (*Decomposition, error) {
	o := gatherOptions(opts...)
	start := time.Now()

	if err := matrix.ValidateNotNil(S); err != nil {
		return nil, pcaErrorf(opDecompose, err)
	}
	if err := matrix.ValidateSquare(S); err != nil {
		return nil, pcaErrorf(opDecompose, fmt.Errorf("%w: %w", ErrShapeMismatch, err))
	}
	sym, err := matrix.Symmetrize(S)
	if err != nil {
		return nil, pcaErrorf(opDecompose, err)
	}

	var d *Decomposition
	switch o.solver {
	case SolverGonum:
		d, err = decomposeGonum(sym)
	default:
		d, err = decomposeJacobi(sym, o)
	}
	if err != nil {
		return nil, pcaErrorf(opDecompose, err)
	}
	o.stageDone(StageDecompose, start, append(shapeFields(S), fieldSolver(d.Solver))...)

	return d, nil
}

// decomposeJacobi scales the relative tolerance by the Frobenius norm so the
// stopping rule is independent of the data's units.
func decomposeJacobi(sym matrix.Matrix, o Options) (*Decomposition, error) {
	norm, err := matrix.FrobeniusNorm(sym)
	if err != nil {
		return nil, err
	}
	n := sym.Rows()
	tol := o.tol * norm
	vals, vecs, err := matrix.Eigen(sym, tol, o.rotationBudget(n))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoConvergence, err)
	}

	return &Decomposition{Values: vals, Vectors: vecs, Solver: SolverJacobi}, nil
}

func decomposeGonum(sym matrix.Matrix) (*Decomposition, error) {
	n := sym.Rows()
	data := make([]float64, 0, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err := sym.At(i, j)
			if err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, data), true); !ok {
		return nil, fmt.Errorf("%w: gonum EigenSym factorization failed", ErrNoConvergence)
	}
	vals := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)

	vecs, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = vecs.Set(i, j, ev.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return &Decomposition{Values: vals, Vectors: vecs, Solver: SolverGonum}, nil
}
