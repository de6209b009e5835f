// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpca/matrix"
)

const epsTight = 1e-12

// ------------------------------
// ColumnMeans / CenterColumns
// ------------------------------

func TestCenterColumns_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})

	Yf, meansF, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	Ys, meansS, err := matrix.CenterColumns(hide{X})
	require.NoError(t, err)

	want := []float64{5.5, 11, 16.5}
	sliceClose(t, meansF, want, 0, 0)
	sliceClose(t, meansS, want, 0, 0)
	CompareClose(t, Yf, Ys, 0, 0)

	// Column averages of Y ≈ 0.
	var i, j int
	var sum float64
	for j = 0; j < 3; j++ {
		sum = 0.0
		for i = 0; i < 2; i++ {
			sum += MustAt(t, Yf, i, j)
		}
		if math.Abs(sum/2) > epsTight {
			t.Fatalf("col %d not centered: avg=%g", j, sum/2)
		}
	}

	// Input untouched.
	CompareExact(t, [][]float64{{1, 2, 3}, {10, 20, 30}}, X)
}

func TestCenterColumns_SingleRowIsZero(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 1, 3, []float64{4, -1, 7})
	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	require.Equal(t, []float64{4, -1, 7}, means)
	CompareExact(t, [][]float64{{0, 0, 0}}, Xc)
}

func TestCenterColumns_Nil(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.CenterColumns(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// ------------------------------
// CrossProduct
// ------------------------------

func TestCrossProduct_MatchesTransposeMul(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 37, 9, 99)
	G, err := matrix.CrossProduct(X, 1)
	require.NoError(t, err)

	Xt, err := matrix.Transpose(X)
	require.NoError(t, err)
	ref, err := matrix.Mul(Xt, X)
	require.NoError(t, err)

	CompareClose(t, G, ref, 1e-12, 1e-12)
	require.NoError(t, matrix.ValidateSymmetric(G, 0))
}

func TestCrossProduct_ParallelEqualsSerial(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 200, 24, 7)
	serial, err := matrix.CrossProduct(X, 1)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 16, -1} {
		par, err := matrix.CrossProduct(X, workers)
		require.NoError(t, err)
		// Bitwise equality: identical per-cell accumulation order.
		CompareClose(t, serial, par, 0, 0)
	}

	slow, err := matrix.CrossProduct(hide{X}, 3)
	require.NoError(t, err)
	CompareClose(t, serial, slow, 0, 0)
}

func TestCrossProduct_SingleColumn(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 1, []float64{1, 2, 3})
	G, err := matrix.CrossProduct(X, 8)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{14}}, G)
}

func TestCrossProduct_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.CrossProduct(nil, 2)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}
