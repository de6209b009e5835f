// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, scaling, symmetrization, column
// permutation and the Jacobi symmetric eigensolver. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//   - Non-*Dense operands are materialized once via asDense so the hot loops
//     always walk a flat row-major slice.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opAdd          = "Add"
	opSymmetrize   = "Symmetrize"
	opPermuteCols  = "PermuteCols"
	opFrobenius    = "FrobeniusNorm"
	opEigen        = "Eigen"
	opMatVec       = "MatVec"
	opCrossProduct = "CrossProduct"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a × b as a new Dense.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); materialize operands as *Dense.
//   - Stage 2: i→k→j loop over flat buffers (row of a times rows of b).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed i→k→j order; every output cell accumulates k in ascending order.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
// Errors: ErrNilMatrix, ErrNaNInf for a non-finite alpha. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k, v := range dm.data {
		res.data[k] = alpha * v
	}

	return res, nil
}

// Add returns a + b element-wise. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	for k := range da.data {
		res.data[k] = da.data[k] + db.data[k]
	}

	return res, nil
}

// Symmetrize returns (m + mᵀ)/2 for a square m.
// Each mirrored pair is written from one averaged value, so the result is
// exactly symmetric, not just within rounding.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2).
//
// AI-Hints: Useful in spectral methods (PCA, Laplacians) to repair asymmetry drift.
func Symmetrize(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	n := dm.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	var i, j int
	var avg float64
	for i = 0; i < n; i++ {
		res.data[i*n+i] = dm.data[i*n+i]
		for j = i + 1; j < n; j++ {
			avg = 0.5 * (dm.data[i*n+j] + dm.data[j*n+i])
			res.data[i*n+j], res.data[j*n+i] = avg, avg
		}
	}

	return res, nil
}

// PermuteCols returns a copy of m whose column k is m[:, perm[k]].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(perm) != Cols),
// ErrBadPermutation (duplicate or out-of-range index).
// Complexity: O(r*c).
func PermuteCols(m Matrix, perm []int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPermuteCols, err)
	}
	if err := ValidatePermutation(perm, m.Cols()); err != nil {
		return nil, matrixErrorf(opPermuteCols, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPermuteCols, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opPermuteCols, err)
	}
	var i, k, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for k = 0; k < cols; k++ {
			res.data[base+k] = dm.data[base+perm[k]]
		}
	}

	return res, nil
}

// FrobeniusNorm returns sqrt(Σ m[i,j]^2), accumulated with math.Hypot to
// avoid intermediate overflow.
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	norm := ZeroSum
	for _, v := range dm.data {
		norm = math.Hypot(norm, v)
	}

	return norm, nil
}

// MatVec returns y = m·x. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and apply a
//     Jacobi rotation that annihilates it; accumulate the rotation into Q.
//   - Stage 3: Stop once max|A[p,q]| ≤ tol; read eigenvalues off the diagonal.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: absolute convergence threshold on the largest off-diagonal magnitude.
//   - maxIter: cap on the number of rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), unordered.
//   - Matrix: Q whose columns are orthonormal eigenvectors; Q[:, i] pairs with vals[i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (not symmetric within tol), ErrNaNInf (bad tol),
//     ErrMatrixEigenFailed (max off-diagonal > tol after maxIter rotations).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter * n), plus O(n^2) per pivot search. Space O(n^2).
//
// Notes:
//   - A diagonal (or zero) input converges before the first rotation: Q = I.
//   - The rotation angle uses the smaller root t = sign(θ)/(|θ|+√(θ²+1)), which keeps |t| ≤ 1.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)

	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	A := src.Clone().(*Dense) // working copy; m is never touched
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter, i, p, q      int
		maxOff             float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	a := A.data
	for iter = 0; iter < maxIter; iter++ {
		// J.1: pivot (p,q) maximizing |A[p,q]|
		maxOff, p, q = maxOffDiagonal(A)

		// J.2: convergence
		if maxOff <= tol {
			break
		}

		// J.3: rotation parameters
		app, aqq, apq = a[p*n+p], a[q*n+q], a[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate rows/cols p and q of A
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = a[i*n+p], a[i*n+q]
			a[i*n+p] = c*aip - s*aiq
			a[p*n+i] = a[i*n+p]
			a[i*n+q] = s*aip + c*aiq
			a[q*n+i] = a[i*n+q]
		}
		a[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p*n+q], a[q*n+p] = 0, 0

		// J.5: accumulate Q = Q·J
		for i = 0; i < n; i++ {
			qip, qiq = Q.data[i*n+p], Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	if maxOff, _, _ = maxOffDiagonal(A); maxOff > tol {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("%w: off-diagonal %g > tol %g after %d rotations", ErrMatrixEigenFailed, maxOff, tol, maxIter))
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a[i*n+i]
	}

	return vals, Q, nil
}

// maxOffDiagonal scans the strict upper triangle of a square Dense in i→j
// order and returns the largest magnitude with its coordinates.
// Ties keep the first hit, which makes the pivot sequence reproducible.
func maxOffDiagonal(A *Dense) (maxOff float64, p, q int) {
	n := A.r
	var i, j, base int
	var off float64
	p, q = 0, 1
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(A.data[base+j])
			if off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return maxOff, p, q
}
