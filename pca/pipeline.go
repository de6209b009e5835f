// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpca/matrix"
)

// Fit runs the full pipeline on a rows×f data matrix X:
//
//	Center → Covariance → Decompose → Rank → Reorder → Project
//
// The same options are passed to every stage. By default the ORIGINAL X is
// projected onto the ranked components; WithProjectCentered projects the
// centered data instead, which shifts every score column by a constant.
//
// Errors: any stage error, tagged with "Fit".
//
// Example:
//
//	res, err := pca.Fit(X, pca.WithSolver(pca.SolverGonum))
//	if err != nil { ... }
//	scores := res.Projected // rows×f, column k along the k-th largest variance
func Fit(X matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	start := time.Now()

	Xc, means, err := Center(X, opts...)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	S, err := Covariance(Xc, opts...)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	d, err := Decompose(S, opts...)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	ranking := Rank(d.Values, opts...)
	V, err := Reorder(d.Vectors, ranking)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	src := X
	if o.projectCentered {
		src = Xc
	}
	Y, err := Project(src, V, opts...)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	values := ordered(d.Values, ranking)
	res := &Result{
		Means:           means,
		Centered:        Xc,
		Covariance:      S,
		Decomposition:   d,
		Ranking:         ranking,
		Values:          values,
		Components:      V,
		Projected:       Y,
		NegativeValues:  NegativeEigenvalues(values),
		projectCentered: o.projectCentered,
	}
	o.metrics.incFits()
	o.logger.Debug("fit complete",
		append(shapeFields(X), fieldSolver(d.Solver), fieldElapsed(start),
			zap.Int("negative_values", len(res.NegativeValues)))...)

	return res, nil
}

// Transform projects new samples Y (m×f) onto the fitted components, using
// the same convention as the Fit that produced r: original data by default,
// or Y minus the fitted means under WithProjectCentered.
//
// Errors: matrix.ErrNilMatrix, ErrShapeMismatch (Y.Cols != len(Means)).
func (r *Result) Transform(Y matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(Y); err != nil {
		return nil, pcaErrorf(opTransform, err)
	}
	if Y.Cols() != len(r.Means) {
		return nil, pcaErrorf(opTransform, fmt.Errorf("%w: got %d features, fitted on %d",
			ErrShapeMismatch, Y.Cols(), len(r.Means)))
	}
	src := Y
	if r.projectCentered {
		var err error
		if src, err = matrix.SubtractColumnVector(Y, r.Means); err != nil {
			return nil, pcaErrorf(opTransform, err)
		}
	}
	out, err := Project(src, r.Components, opts...)
	if err != nil {
		return nil, pcaErrorf(opTransform, err)
	}

	return out, nil
}
