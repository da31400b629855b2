// SPDX-License-Identifier: MIT

// Package markov computes the stationary distribution of a finite
// discrete-time Markov chain by symbolic substitution of its balance
// equations, in exact rational arithmetic.
//
// Every state i contributes one balance equation π_i = Σ_j M[i][j]·π_j, where
// M is the inflow (column-stochastic) form of the transition matrix. Solving
// proceeds in three steps:
//
//   - Simplify: isolate π_i by removing its self term and dividing the rest by
//     1 − (self coefficient);
//   - Eliminate: substitute every non-pivot equation into the others
//     (Substitute, Consolidate, Simplify) until each π_j, j ≥ 1, is a
//     multiple of π_0;
//   - Normalize: π_0 = 1/(1 + Σ c_j), π_j = c_j·π_0.
//
// Coefficients are *big.Rat throughout; float64 inputs are read through their
// shortest decimal form, so the result of a decimal transition table is
// exact and sums to exactly 1.
//
// Quick start:
//
//	m, _ := matrix.NewDenseFrom([][]float64{
//		{0.65, 0.15, 0.1},
//		{0.25, 0.65, 0.4},
//		{0.1, 0.2, 0.5},
//	})
//	pi, err := markov.SteadyState(m)
//	// pi.String() == "[19/69 11/23 17/69]"
//
// Conventions:
//
//	ColumnStochastic (default)  columns sum to 1, M[i][j] = P(j→i)
//	RowStochastic               rows sum to 1,    P[i][j] = P(i→j)
//
// A state that cannot be isolated (an absorbing state, or a closed class
// that excludes state 0) yields ErrDegenerateEquation; the chain then has no
// unique stationary distribution reachable by this method.
package markov
