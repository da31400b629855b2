// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/steadystate/matrix"
)

// pivot is the state every other probability is finally expressed in.
const pivot = 0

// Solve computes the stationary distribution of the chain.
//
// Implementation:
//   - Stage 1: Simplify every equation (the pivot's included), isolating π_i.
//   - Stage 2: elimination passes. For each state i in the elimination order
//     and each other non-pivot state j whose equation references π_i:
//     Substitute(eq_i) into eq_j, Consolidate, Simplify.
//   - Stage 3: repeat passes until no non-pivot equation references a
//     non-pivot state, bounded by the pass cap (default N).
//   - Stage 4: normalize. With π_j = c_j·π_0, π_0 = 1/(1+Σc_j).
//
// Behavior highlights:
//   - Exact arithmetic: the result sums to exactly 1.
//   - A single-state chain solves to [1] without elimination.
//   - The first call transforms the equations in place and caches its
//     outcome; later calls return the same *Distribution (or error).
//
// Errors:
//   - *DegenerateEquationError (ErrDegenerateEquation) when a state cannot be
//     isolated, e.g. an absorbing state or a closed class not containing π_0.
//   - ErrNotConverged when the pass cap is reached.
//   - *InvalidProbabilityError when normalization yields a non-positive
//     normalizer or a negative component (only without validation).
//
// Complexity:
//   - Time O(N³) per pass, Space O(N²).
func (c *Chain) Solve() (*Distribution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.solved {
		c.result, c.err = c.solve()
		c.solved = true
	}

	return c.result, c.err
}

// solve runs the stages of Solve; the caller holds c.mu.
func (c *Chain) solve() (*Distribution, error) {
	log := c.opts.logger
	if c.n == 1 {
		log.Debug("single-state chain")

		return &Distribution{values: []*big.Rat{big.NewRat(1, 1)}}, nil
	}

	for _, eq := range c.eqs {
		if err := eq.Simplify(); err != nil {
			log.Debug("simplify failed", "state", eq.defining, "err", err)

			return nil, markovErrorf(opSimplify, err)
		}
	}

	if err := c.eliminate(c.opts.passesFor(c.n)); err != nil {
		return nil, markovErrorf(opEliminate, err)
	}

	return c.normalize()
}

// eliminationOrder returns the configured order or 1..N-1.
func (c *Chain) eliminationOrder() []int {
	if c.opts.order != nil {
		return c.opts.order
	}
	order := make([]int, 0, c.n-1)
	for s := 1; s < c.n; s++ {
		order = append(order, s)
	}

	return order
}

// eliminate runs passes until every non-pivot equation only references the
// pivot, or limit passes have run.
func (c *Chain) eliminate(limit int) error {
	order := c.eliminationOrder()
	for pass := 0; ; pass++ {
		left := c.pending()
		c.opts.logger.Debug("elimination", "pass", pass, "pending", left)
		if left == 0 {
			return nil
		}
		if pass == limit {
			return fmt.Errorf("%w: %d references left after %d passes", ErrNotConverged, left, limit)
		}
		if err := c.eliminationPass(order); err != nil {
			return err
		}
	}
}

// eliminationPass substitutes every equation of order into every other
// equation of order that references it.
func (c *Chain) eliminationPass(order []int) error {
	for _, i := range order {
		src := c.eqs[i]
		for _, j := range order {
			if i == j {
				continue
			}
			dst := c.eqs[j]
			if !dst.References(i) {
				continue
			}
			dst.Substitute(src)
			dst.Consolidate()
			if err := dst.Simplify(); err != nil {
				return err
			}
		}
	}

	return nil
}

// pending counts terms of non-pivot equations that still reference a
// non-pivot state.
func (c *Chain) pending() int {
	left := 0
	for j := 1; j < c.n; j++ {
		for _, t := range c.eqs[j].terms {
			if t.Index != pivot {
				left++
			}
		}
	}

	return left
}

// normalize turns π_j = c_j·π_0 into a probability vector.
func (c *Chain) normalize() (*Distribution, error) {
	weights := make([]*big.Rat, c.n)
	weights[pivot] = big.NewRat(1, 1)
	total := big.NewRat(1, 1)
	for j := 1; j < c.n; j++ {
		weights[j] = c.eqs[j].Coefficient(pivot)
		total.Add(total, weights[j])
	}
	if total.Sign() <= 0 {
		return nil, markovErrorf(opNormalize, &InvalidProbabilityError{
			Row: -1, Col: -1, Value: total.RatString(), Reason: ReasonNormalizer,
		})
	}

	scale := new(big.Rat).Inv(total)
	values := make([]*big.Rat, c.n)
	for j, w := range weights {
		values[j] = new(big.Rat).Mul(w, scale)
		if values[j].Sign() < 0 {
			return nil, markovErrorf(opNormalize, &InvalidProbabilityError{
				Row: j, Col: -1, Value: values[j].RatString(), Reason: ReasonNegative,
			})
		}
	}
	c.opts.logger.Debug("normalized", "pivot", scale.RatString(), "states", c.n)

	return &Distribution{values: values}, nil
}

// SteadyState is the one-shot facade: NewChain(m, opts...) then Solve.
func SteadyState(m matrix.Matrix, opts ...Option) (*Distribution, error) {
	c, err := NewChain(m, opts...)
	if err != nil {
		return nil, err
	}

	return c.Solve()
}

// SteadyStateRat is SteadyState over exact rational rows.
func SteadyStateRat(rows [][]*big.Rat, opts ...Option) (*Distribution, error) {
	c, err := NewChainRat(rows, opts...)
	if err != nil {
		return nil, err
	}

	return c.Solve()
}
