// SPDX-License-Identifier: MIT
// Package pca: sentinel error set.
// Stages wrap these with an operation tag (pcaErrorf) and, where a matrix
// kernel detected the condition, also keep the matrix sentinel in the chain,
// so both errors.Is(err, pca.ErrShapeMismatch) and
// errors.Is(err, matrix.ErrNonSquare) hold.

package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when a stage receives operands of incompatible
	// shape: a non-square matrix for Decompose, or X.Cols != V.Rows for Project.
	ErrShapeMismatch = errors.New("pca: shape mismatch")

	// ErrNoConvergence is returned when the eigensolver fails to converge.
	ErrNoConvergence = errors.New("pca: eigendecomposition did not converge")

	// ErrNotCentered is returned by Covariance under WithCenteringCheck when a
	// column mean is not within tolerance of zero.
	ErrNotCentered = errors.New("pca: input is not mean-centered")

	// ErrInvalidRanking is returned when a ranking is not a permutation of the columns.
	ErrInvalidRanking = errors.New("pca: ranking is not a permutation")

	// ErrUnknownSolver is returned by ParseSolver for an unrecognized name.
	ErrUnknownSolver = errors.New("pca: unknown solver")
)

// Operation tags.
const (
	opCenter     = "Center"
	opCovariance = "Covariance"
	opDecompose  = "Decompose"
	opProject    = "Project"
	opReorder    = "Reorder"
	opFit        = "Fit"
	opTransform  = "Transform"
)

// pcaErrorf wraps err with an operation tag. Only call with err != nil.
func pcaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
