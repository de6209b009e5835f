// Package matrix offers the dense linear-algebra kernels behind lvpca.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     only ever holds finite values.
//   - Pure kernels (Mul, Transpose, Scale, Add, Symmetrize, PermuteCols,
//     MatVec, FrobeniusNorm, AllClose) that allocate a fresh result and never
//     mutate their operands.
//   - Statistics (ColumnMeans, CenterColumns, CrossProduct) with a bounded
//     goroutine fan-out for the Gram product.
//   - Eigen, a deterministic classical Jacobi eigensolver for symmetric input.
//
// Every failure is reported through the sentinels in errors.go; match them
// with errors.Is.
//
// See the examples in this package and in pca for usage patterns.
package matrix
