// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (At-based) materialization path.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from row-major vals.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// RandFilledDense returns an r×c matrix with entries uniform in [-1, 1).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1
	}

	return NewFilledDense(t, r, c, vals)
}

// RandSymmetric returns Aᵀ+A for a random n×n A (symmetric, indefinite).
func RandSymmetric(t testing.TB, n int, seed int64) matrix.Matrix {
	t.Helper()
	A := RandFilledDense(t, n, n, seed)
	At, err := matrix.Transpose(A)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	S, err := matrix.Add(A, At)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	return S
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts m equals want cell by cell.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts AllClose(a, b, rtol, atol).
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\na=%v\nb=%v", rtol, atol, a, b)
	}
}

// sliceClose asserts |a[i]-b[i]| ≤ atol + rtol*|b[i]| for all i.
func sliceClose(t testing.TB, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			t.Fatalf("sliceClose idx=%d: got=%g want=%g (rtol=%g atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// propOrthonormal asserts QᵀQ ≈ I within delta.
func propOrthonormal(t testing.TB, Q matrix.Matrix, delta float64) {
	t.Helper()
	Qt, err := matrix.Transpose(Q)
	if err != nil {
		t.Fatalf("Transpose(Q): %v", err)
	}
	QtQ, err := matrix.Mul(Qt, Q)
	if err != nil {
		t.Fatalf("Mul(Qt, Q): %v", err)
	}
	I, err := matrix.NewIdentity(Q.Cols())
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	CompareClose(t, QtQ, I, 0, delta)
}

// propEigenEquation asserts ‖A·q_i − λ_i·q_i‖ ≤ delta·max(1,‖A‖_F) for every column i.
func propEigenEquation(t testing.TB, A, Q matrix.Matrix, vals []float64, delta float64) {
	t.Helper()
	n := A.Rows()
	if Q.Rows() != n || Q.Cols() != n || len(vals) != n {
		t.Fatalf("shape: A %d×%d, Q %d×%d, vals %d", n, A.Cols(), Q.Rows(), Q.Cols(), len(vals))
	}
	norm, err := matrix.FrobeniusNorm(A)
	if err != nil {
		t.Fatalf("FrobeniusNorm: %v", err)
	}
	bound := delta * math.Max(1, norm)
	AQ, err := matrix.Mul(A, Q)
	if err != nil {
		t.Fatalf("Mul(A, Q): %v", err)
	}
	var i, j int
	var res, d float64
	for j = 0; j < n; j++ {
		res = 0
		for i = 0; i < n; i++ {
			d = MustAt(t, AQ, i, j) - vals[j]*MustAt(t, Q, i, j)
			res = math.Hypot(res, d)
		}
		if res > bound {
			t.Fatalf("eigenpair %d: residual %g > %g (λ=%g)", j, res, bound, vals[j])
		}
	}
}
