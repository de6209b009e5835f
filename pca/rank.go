// SPDX-License-Identifier: MIT

package pca

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

// Rank returns the indices of values sorted by descending value.
// Equal values keep their original relative order, so the ranking of a
// degenerate spectrum is reproducible. values is not modified.
//
// Negative values are not an error: a covariance spectrum is non-negative in
// exact arithmetic, so a negative entry is round-off or a caller bug. Each is
// logged at Warn and counted on the metrics counter; NegativeEigenvalues
// reports their positions.
//
// Complexity: O(n log n).
func Rank(values []float64, opts ...Option) []int {
	o := gatherOptions(opts...)
	start := time.Now()

	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] > values[idx[b]] })

	if neg := NegativeEigenvalues(values); len(neg) > 0 {
		o.metrics.addNegative(len(neg))
		for _, i := range neg {
			o.logger.Warn("negative eigenvalue in covariance spectrum",
				zap.Int("index", i), zap.Float64("value", values[i]))
		}
	}
	o.stageDone(StageRank, start, zap.Int("n", len(values)))

	return idx
}

// NegativeEigenvalues returns the positions i with values[i] < 0, ascending.
func NegativeEigenvalues(values []float64) []int {
	var out []int
	for i, v := range values {
		if v < 0 {
			out = append(out, i)
		}
	}

	return out
}

// ordered returns values[ranking[k]] for each k.
func ordered(values []float64, ranking []int) []float64 {
	out := make([]float64, len(ranking))
	for k, i := range ranking {
		out[k] = values[i]
	}

	return out
}
