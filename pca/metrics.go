// SPDX-License-Identifier: MIT

package pca

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stage labels for the stage duration histogram.
const (
	StageCenter     = "center"
	StageCovariance = "covariance"
	StageDecompose  = "decompose"
	StageRank       = "rank"
	StageProject    = "project"
)

const metricsNamespace = "lvpca"

// Metrics exposes pipeline instrumentation as Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	stageSeconds  *prometheus.HistogramVec
	negativeValue prometheus.Counter
	fits          prometheus.Counter
}

// NewMetrics builds the collectors and registers them on reg.
// Pass prometheus.NewRegistry() for an isolated registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		stageSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time spent in each PCA stage.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"stage"}),
		negativeValue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "negative_eigenvalues_total",
			Help:      "Eigenvalues below zero seen while ranking a covariance spectrum.",
		}),
		fits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "fits_total",
			Help:      "Completed Fit pipelines.",
		}),
	}
	for _, c := range []prometheus.Collector{m.stageSeconds, m.negativeValue, m.fits} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeStage(stage string, since time.Time) {
	if m == nil {
		return
	}
	m.stageSeconds.WithLabelValues(stage).Observe(time.Since(since).Seconds())
}

func (m *Metrics) addNegative(n int) {
	if m == nil || n == 0 {
		return
	}
	m.negativeValue.Add(float64(n))
}

func (m *Metrics) incFits() {
	if m == nil {
		return
	}
	m.fits.Inc()
}
