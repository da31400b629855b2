// SPDX-License-Identifier: MIT

// Package markov: domain types of the substitution solver.
// Errors and options live in dedicated files (errors.go, options.go).
package markov

import (
	"math/big"
	"sync"
)

// Term is one summand Coef·π[Index] on the right-hand side of a balance equation.
// Coef is an exact rational; a Term returned by an accessor owns its Coef.
type Term struct {
	Index int      // chain state 0..N-1
	Coef  *big.Rat // exact coefficient
}

// clone returns a Term with a freshly allocated coefficient.
func (t Term) clone() Term {
	return Term{Index: t.Index, Coef: new(big.Rat).Set(t.Coef)}
}

// Equation is the balance equation π[defining] = Σ terms.
//
// Invariants:
//   - after construction: one term per state, taken from one matrix row;
//   - while solving: at most one term per index (Consolidate) and no term on
//     the defining index once Simplify has run;
//   - the terms slice and every *big.Rat in it belong to this Equation only.
type Equation struct {
	defining int
	terms    []Term
}

// Convention selects which axis of the input matrix sums to 1.
type Convention int

const (
	// ColumnStochastic: columns sum to 1 and row i holds the probability
	// flowing into state i from every state j (π = Mπ).
	ColumnStochastic Convention = iota

	// RowStochastic: rows sum to 1 (P[i][j] = P(i→j), π = πP). The matrix is
	// transposed before equations are built.
	RowStochastic
)

// String returns the lower-case name used by config files and the CLI.
func (c Convention) String() string {
	switch c {
	case ColumnStochastic:
		return "column"
	case RowStochastic:
		return "row"
	default:
		return "unknown"
	}
}

// valid reports whether c is a known convention.
func (c Convention) valid() bool {
	return c == ColumnStochastic || c == RowStochastic
}

// Chain is an N-state Markov chain prepared for solving: the exact input
// matrix (as supplied, never mutated) plus one balance equation per state.
//
// Concurrency:
//   - Solve holds mu for its whole duration; the first call transforms the
//     equations in place and caches its outcome, later calls return the cache.
type Chain struct {
	mu sync.Mutex

	n     int          // number of states
	probs [][]*big.Rat // input matrix, input orientation
	eqs   []*Equation  // eqs[i] defines π_i
	opts  Options      // resolved options

	solved bool          // Solve has run
	result *Distribution // cached result
	err    error         // cached failure
}

// Distribution is a solved stationary probability vector.
// Values are exact and sum to exactly 1. A Distribution is immutable.
type Distribution struct {
	values []*big.Rat
}
