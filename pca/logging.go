// SPDX-License-Identifier: MIT

package pca

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpca/matrix"
)

// Structured field helpers keep key names identical across stages.

func fieldStage(stage string) zap.Field { return zap.String("stage", stage) }

func fieldElapsed(since time.Time) zap.Field { return zap.Duration("elapsed", time.Since(since)) }

func fieldSolver(s Solver) zap.Field { return zap.String("solver", string(s)) }

func shapeFields(m matrix.Matrix) []zap.Field {
	return []zap.Field{zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols())}
}

// stageDone logs a completed stage at Debug and records its duration.
func (o Options) stageDone(stage string, since time.Time, fields ...zap.Field) {
	o.metrics.observeStage(stage, since)
	if ce := o.logger.Check(zap.DebugLevel, "stage complete"); ce != nil {
		ce.Write(append([]zap.Field{fieldStage(stage), fieldElapsed(since)}, fields...)...)
	}
}
