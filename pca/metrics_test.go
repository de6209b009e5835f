package pca

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpca/matrix"
)

func TestMetrics_Fit(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	X, err := matrix.NewDenseFrom(3, 2, []float64{1, 2, 2, 1, 3, 3})
	require.NoError(t, err)
	_, err = Fit(X, WithMetrics(m))
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.fits))
	// one series per stage label
	require.Equal(t, 5, testutil.CollectAndCount(m.stageSeconds))
	require.Equal(t, 0.0, testutil.ToFloat64(m.negativeValue))
}

func TestMetrics_Negative(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	Rank([]float64{-1, 2, -3}, WithMetrics(m))
	require.Equal(t, 2.0, testutil.ToFloat64(m.negativeValue))
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.addNegative(3)
		m.incFits()
	})
}

func TestRotationBudget(t *testing.T) {
	o := gatherOptions()
	require.Equal(t, minRotations, o.rotationBudget(1))
	require.Equal(t, rotationsPerEntry*36, o.rotationBudget(6))
	require.Equal(t, 7, gatherOptions(WithMaxRotations(7)).rotationBudget(6))
}
