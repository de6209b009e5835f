package pca_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpca/matrix"
)

const eps = 1e-9

func mustDense(t testing.TB, rows, cols int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)

	return m
}

// randData fills rows×cols with N(0,1)·scale[j] per column plus an offset,
// giving well-separated variances along the axes.
func randData(t testing.TB, rows, cols int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = rng.NormFloat64()*float64(j+1) + 10
		}
	}

	return mustDense(t, rows, cols, data)
}

func randSymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.Float64()*2 - 1
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, v))
		}
	}

	return m
}

func at(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func column(t testing.TB, m matrix.Matrix, j int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		out[i] = at(t, m, i, j)
	}

	return out
}

// requireClose compares two matrices entrywise within tol.
func requireClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDelta(t, at(t, want, i, j), at(t, got, i, j), tol, "(%d,%d)", i, j)
		}
	}
}

// requireSameDirection checks a == ±b within tol; eigenvector signs are arbitrary.
func requireSameDirection(t testing.TB, a, b []float64, tol float64) {
	t.Helper()
	require.Len(t, b, len(a))
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	sign := math.Copysign(1, dot)
	for i := range a {
		require.InDelta(t, a[i], sign*b[i], tol, "component %d", i)
	}
}

// requireEigenpairs checks S·v_i = λ_i·v_i and VᵀV = I.
func requireEigenpairs(t testing.TB, S matrix.Matrix, vals []float64, V matrix.Matrix, tol float64) {
	t.Helper()
	n := S.Rows()
	require.Len(t, vals, n)
	for i := 0; i < n; i++ {
		v := column(t, V, i)
		Sv, err := matrix.MatVec(S, v)
		require.NoError(t, err)
		for k := 0; k < n; k++ {
			require.InDelta(t, vals[i]*v[k], Sv[k], tol, "pair %d row %d", i, k)
		}
	}
	Vt, err := matrix.Transpose(V)
	require.NoError(t, err)
	VtV, err := matrix.Mul(Vt, V)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	requireClose(t, I, VtV, tol)
}
