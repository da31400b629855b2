// SPDX-License-Identifier: MIT

// Package markov: functional configuration of the solver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Panic only on invalid parameters (programmer error); data-dependent
//     problems (e.g. an elimination order that does not fit N) are errors.
package markov

import (
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance bounds |Σ - 1| for every stochastic sum on ingestion.
	// Arithmetic itself is exact; the tolerance only absorbs the decimal noise
	// of float64 inputs.
	DefaultTolerance = 1e-9

	// DefaultConvention: columns sum to 1, row i is the inflow to state i.
	DefaultConvention = ColumnStochastic

	// DefaultMaxPasses of 0 means "N passes" for an N-state chain.
	DefaultMaxPasses = 0

	// DefaultValidate enables range and sum checks on ingestion.
	DefaultValidate = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid  = "markov: WithTolerance: tolerance must be finite, non-negative"
	panicConventionInvalid = "markov: WithConvention: unknown convention"
	panicMaxPassesInvalid  = "markov: WithMaxPasses: passes must be >= 1"
)

// Option mutates internal options. Options apply left to right.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	tolerance  float64      // DefaultTolerance
	convention Convention   // DefaultConvention
	maxPasses  int          // DefaultMaxPasses (0 ⇒ N)
	validate   bool         // DefaultValidate
	order      []int        // nil ⇒ 1..N-1
	logger     *slog.Logger // discard by default
}

// WithTolerance sets the tolerance applied to stochastic sums.
// Panics when eps is NaN, ±Inf or negative.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = eps }
}

// WithConvention selects which axis of the input sums to 1.
// Panics on an unknown Convention value.
func WithConvention(c Convention) Option {
	if !c.valid() {
		panic(panicConventionInvalid)
	}

	return func(o *Options) { o.convention = c }
}

// WithColumnStochastic is WithConvention(ColumnStochastic), the default.
func WithColumnStochastic() Option { return WithConvention(ColumnStochastic) }

// WithRowStochastic is WithConvention(RowStochastic): P[i][j] = P(i→j).
func WithRowStochastic() Option { return WithConvention(RowStochastic) }

// WithMaxPasses caps the number of elimination passes.
// One pass already eliminates every non-pivot reference for a
// non-degenerate chain; the cap bounds pathological inputs.
// Panics when passes < 1.
func WithMaxPasses(passes int) Option {
	if passes < 1 {
		panic(panicMaxPassesInvalid)
	}

	return func(o *Options) { o.maxPasses = passes }
}

// WithoutValidation skips the [0,1] range and stochastic-sum checks.
// Non-finite entries and malformed shapes are still rejected.
func WithoutValidation() Option {
	return func(o *Options) { o.validate = false }
}

// WithEliminationOrder sets the order in which non-pivot states are
// eliminated. The order must be a permutation of 1..N-1; this is checked by
// NewChain (ErrBadEliminationOrder) since N is not known here.
// The stationary vector does not depend on the order.
func WithEliminationOrder(order ...int) Option {
	cp := make([]int, len(order)) // non-nil even when empty
	copy(cp, order)

	return func(o *Options) { o.order = cp }
}

// WithLogger routes solver debug records to logger. nil restores the
// discarding default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			logger = discardLogger()
		}
		o.logger = logger
	}
}

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gatherOptions resolves user options over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		tolerance:  DefaultTolerance,
		convention: DefaultConvention,
		maxPasses:  DefaultMaxPasses,
		validate:   DefaultValidate,
		logger:     discardLogger(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// passesFor resolves the pass cap for an n-state chain.
func (o Options) passesFor(n int) int {
	if o.maxPasses > 0 {
		return o.maxPasses
	}
	if n < 1 {
		return 1
	}

	return n
}
