// SPDX-License-Identifier: MIT

package pca

import "github.com/katalvlaran/lvpca/matrix"

// Decomposition is an eigendecomposition S·V = V·diag(Values) of a symmetric matrix.
// Vectors[:, i] pairs with Values[i]; the order is whatever the solver produced.
type Decomposition struct {
	Values  []float64
	Vectors matrix.Matrix
	Solver  Solver
}

// Result collects every intermediate of a Fit run.
//
// Fields:
//   - Means: per-feature means of the input data.
//   - Centered: input minus Means, row by row.
//   - Covariance: (1/rows)·Centeredᵀ·Centered, symmetric.
//   - Decomposition: raw solver output, unordered.
//   - Ranking: column indices of Decomposition sorted by descending eigenvalue.
//   - Values: eigenvalues in Ranking order (non-increasing).
//   - Components: eigenvectors reordered so Components[:, k] pairs with Values[k].
//   - Projected: data·Components, the principal component scores.
//   - NegativeValues: positions in Values holding an eigenvalue below zero.
type Result struct {
	Means          []float64
	Centered       matrix.Matrix
	Covariance     matrix.Matrix
	Decomposition  *Decomposition
	Ranking        []int
	Values         []float64
	Components     matrix.Matrix
	Projected      matrix.Matrix
	NegativeValues []int

	projectCentered bool
}

// ExplainedVariance returns Values[k] / ΣValues for each component.
// An all-zero spectrum yields all zeros.
func (r *Result) ExplainedVariance() []float64 {
	out := make([]float64, len(r.Values))
	var total float64
	for _, v := range r.Values {
		total += v
	}
	if total == 0 {
		return out
	}
	for k, v := range r.Values {
		out[k] = v / total
	}

	return out
}
