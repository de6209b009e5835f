// SPDX-License-Identifier: MIT

// Package pca implements principal component analysis as a chain of small,
// individually usable stages over matrix.Matrix values.
//
// What:
//
//   - Center:      subtract per-feature means (returns the means too).
//   - Covariance:  S = (1/rows)·Xcᵀ·Xc, exactly symmetric, optional worker fan-out.
//   - Decompose:   eigenpairs of a symmetric S (Jacobi rotations or gonum EigenSym).
//   - Rank:        stable descending order of eigenvalues; negatives are flagged.
//   - Reorder:     permute eigenvector columns by a ranking.
//   - Project:     X·V, principal component scores.
//   - Fit:         the whole chain, returning every intermediate in a Result.
//
// Why:
//
//   - Each stage is a pure function of its inputs; none mutates arguments.
//   - Results are deterministic: the parallel cross-product writes every cell
//     from exactly one task in a fixed accumulation order.
//
// Options:
//
//	WithSolver, WithTolerance, WithMaxRotations, WithWorkers,
//	WithCenteringCheck, WithCenteringTolerance, WithProjectCentered,
//	WithLogger (zap, no-op by default), WithMetrics (Prometheus collectors).
//
// Errors:
//
//	ErrShapeMismatch, ErrNoConvergence, ErrNotCentered, ErrInvalidRanking,
//	ErrUnknownSolver, plus matrix sentinels kept in the wrap chain.
//
// Conventions:
//
//   - Eigenvalue i pairs with eigenvector column i everywhere.
//   - Each component's sign is arbitrary, as with any eigensolver.
//   - Fit projects the original data by default (see WithProjectCentered).
package pca
