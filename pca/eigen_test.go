package pca_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpca/matrix"
	"github.com/katalvlaran/lvpca/pca"
)

func TestDecompose_EigenRelation(t *testing.T) {
	for _, solver := range []pca.Solver{pca.SolverJacobi, pca.SolverGonum} {
		for _, n := range []int{1, 2, 5, 12} {
			S := randSymmetric(t, n, int64(n)*31)
			d, err := pca.Decompose(S, pca.WithSolver(solver))
			require.NoError(t, err, "solver=%s n=%d", solver, n)
			require.Equal(t, solver, d.Solver)
			requireEigenpairs(t, S, d.Values, d.Vectors, 1e-9)
		}
	}
}

// TestDecompose_SolversAgree compares ranked spectra and directions.
func TestDecompose_SolversAgree(t *testing.T) {
	S := randSymmetric(t, 8, 2024)
	dj, err := pca.Decompose(S, pca.WithSolver(pca.SolverJacobi))
	require.NoError(t, err)
	dg, err := pca.Decompose(S, pca.WithSolver(pca.SolverGonum))
	require.NoError(t, err)

	rj, rg := pca.Rank(dj.Values), pca.Rank(dg.Values)
	for k := range rj {
		require.InDelta(t, dj.Values[rj[k]], dg.Values[rg[k]], 1e-10, "rank %d", k)
		requireSameDirection(t, column(t, dj.Vectors, rj[k]), column(t, dg.Vectors, rg[k]), 1e-7)
	}
}

func TestDecompose_DoesNotMutate(t *testing.T) {
	S := randSymmetric(t, 4, 1)
	before := S.Clone()
	_, err := pca.Decompose(S)
	require.NoError(t, err)
	requireClose(t, before, S, 0)
}

// TestDecompose_SymmetrizesInput: a slightly asymmetric input is averaged first.
func TestDecompose_SymmetrizesInput(t *testing.T) {
	S := mustDense(t, 2, 2, []float64{2, 1 + 1e-7, 1 - 1e-7, 2})
	d, err := pca.Decompose(S)
	require.NoError(t, err)
	r := pca.Rank(d.Values)
	require.InDelta(t, 3.0, d.Values[r[0]], eps)
	require.InDelta(t, 1.0, d.Values[r[1]], eps)
}

func TestDecompose_ZeroMatrix(t *testing.T) {
	Z, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	for _, solver := range []pca.Solver{pca.SolverJacobi, pca.SolverGonum} {
		d, err := pca.Decompose(Z, pca.WithSolver(solver))
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{0, 0, 0}, d.Values, 0)
	}
}

func TestDecompose_Errors(t *testing.T) {
	_, err := pca.Decompose(mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}))
	require.True(t, errors.Is(err, pca.ErrShapeMismatch))
	require.True(t, errors.Is(err, matrix.ErrNonSquare))

	_, err = pca.Decompose(nil)
	require.True(t, errors.Is(err, matrix.ErrNilMatrix))

	// One rotation cannot clear a dense 5×5.
	_, err = pca.Decompose(randSymmetric(t, 5, 8), pca.WithMaxRotations(1))
	require.True(t, errors.Is(err, pca.ErrNoConvergence))
	require.True(t, errors.Is(err, matrix.ErrMatrixEigenFailed))
}

func TestParseSolver(t *testing.T) {
	s, err := pca.ParseSolver("gonum")
	require.NoError(t, err)
	require.Equal(t, pca.SolverGonum, s)

	_, err = pca.ParseSolver("qr")
	require.True(t, errors.Is(err, pca.ErrUnknownSolver))
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { pca.WithSolver("qr") })
	require.Panics(t, func() { pca.WithTolerance(0) })
	require.Panics(t, func() { pca.WithTolerance(-1) })
	require.Panics(t, func() { pca.WithMaxRotations(-1) })
	require.Panics(t, func() { pca.WithCenteringTolerance(0) })
	require.NotPanics(t, func() { pca.WithMaxRotations(0) })
	require.NotPanics(t, func() { pca.WithLogger(nil) })
}
