// SPDX-License-Identifier: MIT

package dataset

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/lvpca/matrix"
)

// Random returns a rows×cols matrix of uniform [0,1) values drawn from a
// source seeded with seed; equal seeds give equal matrices.
//
// Errors: matrix.ErrInvalidDimensions for rows < 1 or cols < 1.
func Random(rows, cols int, seed int64) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, rng.Float64()); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// FeatureHeader returns x1..xN, the header used for generated datasets.
func FeatureHeader(n int) []string {
	h := make([]string, n)
	for k := range h {
		h[k] = "x" + strconv.Itoa(k+1)
	}

	return h
}
