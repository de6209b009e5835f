// SPDX-License-Identifier: MIT

// Package pca: functional configuration for the pipeline stages.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults first.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package pca

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Solver names an eigensolver backend.
type Solver string

const (
	// SolverJacobi is the classical Jacobi rotation solver from package matrix.
	SolverJacobi Solver = "jacobi"

	// SolverGonum delegates to gonum's symmetric eigensolver (LAPACK dsyev port).
	SolverGonum Solver = "gonum"
)

// ParseSolver maps a name to a Solver. Returns ErrUnknownSolver otherwise.
func ParseSolver(name string) (Solver, error) {
	switch s := Solver(name); s {
	case SolverJacobi, SolverGonum:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSolver is the eigensolver used when WithSolver is not given.
	DefaultSolver = SolverJacobi

	// DefaultTolerance is the relative Jacobi convergence threshold: the largest
	// off-diagonal magnitude must fall to DefaultTolerance·‖S‖_F.
	DefaultTolerance = 1e-12

	// DefaultMaxRotations of 0 means "derive from n": rotationsPerEntry·n².
	DefaultMaxRotations = 0

	// DefaultWorkers runs the covariance cross-product inline.
	DefaultWorkers = 1

	// DefaultCenteringTolerance bounds |mean| (relative to the largest |entry|)
	// accepted by WithCenteringCheck.
	DefaultCenteringTolerance = 1e-9

	// rotationsPerEntry scales the derived rotation budget.
	rotationsPerEntry = 100

	// minRotations floors the derived rotation budget for tiny matrices.
	minRotations = 100
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "pca: WithTolerance: tol must be finite and > 0"
	panicRotationsInvalid = "pca: WithMaxRotations: n must be >= 0"
	panicSolverInvalid    = "pca: WithSolver: unknown solver"
	panicCenterTolInvalid = "pca: WithCenteringTolerance: tol must be finite and > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	solver          Solver
	tol             float64
	maxRotations    int
	workers         int
	checkCentered   bool
	centerTol       float64
	projectCentered bool
	logger          *zap.Logger
	metrics         *Metrics
}

// WithSolver selects the eigensolver. Panics on an unknown Solver value.
func WithSolver(s Solver) Option {
	if _, err := ParseSolver(string(s)); err != nil {
		panic(panicSolverInvalid)
	}
	return func(o *Options) { o.solver = s }
}

// WithTolerance sets the relative Jacobi convergence threshold.
// Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.tol = tol }
}

// WithMaxRotations caps the number of Jacobi rotations; 0 derives it from n.
func WithMaxRotations(n int) Option {
	if n < 0 {
		panic(panicRotationsInvalid)
	}
	return func(o *Options) { o.maxRotations = n }
}

// WithWorkers bounds the goroutine fan-out of the covariance cross-product.
// 0 or 1 runs inline; -1 uses runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithCenteringCheck makes Covariance verify that its input is mean-centered
// and fail with ErrNotCentered otherwise.
func WithCenteringCheck() Option {
	return func(o *Options) { o.checkCentered = true }
}

// WithCenteringTolerance overrides DefaultCenteringTolerance for WithCenteringCheck.
func WithCenteringTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicCenterTolInvalid)
	}
	return func(o *Options) { o.centerTol = tol }
}

// WithProjectCentered makes Fit project the centered data instead of the original data.
func WithProjectCentered() Option {
	return func(o *Options) { o.projectCentered = true }
}

// WithLogger routes stage diagnostics to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records stage durations and numerical-quality warnings on m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		solver:       DefaultSolver,
		tol:          DefaultTolerance,
		maxRotations: DefaultMaxRotations,
		workers:      DefaultWorkers,
		centerTol:    DefaultCenteringTolerance,
		logger:       zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// rotationBudget resolves the Jacobi rotation cap for an n×n problem.
func (o Options) rotationBudget(n int) int {
	if o.maxRotations > 0 {
		return o.maxRotations
	}
	if budget := rotationsPerEntry * n * n; budget > minRotations {
		return budget
	}

	return minRotations
}
