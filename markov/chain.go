// SPDX-License-Identifier: MIT

package markov

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/katalvlaran/steadystate/matrix"
)

// NewChain prepares an N×N transition matrix for solving.
//
// Implementation:
//   - Stage 1: nil, empty and non-square shapes are rejected.
//   - Stage 2: every entry is read through At and converted to an exact
//     rational via its shortest decimal form (0.65 becomes exactly 13/20).
//   - Stage 3: shared ingestion (see NewChainRat): validation, elimination
//     order check, orientation, one Equation per state.
//
// Errors:
//   - ErrNilMatrix; *DimensionMismatchError; *InvalidProbabilityError
//     (non-finite, out of range, bad sum); ErrBadEliminationOrder.
//   - Errors of a foreign Matrix implementation's At are returned wrapped.
//
// Complexity:
//   - Time O(N²), Space O(N²).
//
// AI-Hints:
//   - Build the matrix with matrix.NewDenseFrom; pass WithRowStochastic for
//     P[i][j] = P(i→j) input.
func NewChain(m matrix.Matrix, opts ...Option) (*Chain, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, markovErrorf(opNewChain, ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 {
		return nil, markovErrorf(opNewChain, &DimensionMismatchError{Row: -1})
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, markovErrorf(opNewChain, &DimensionMismatchError{Row: -1, Want: rows, Got: cols})
	}

	probs := make([][]*big.Rat, rows)
	for i := 0; i < rows; i++ {
		probs[i] = make([]*big.Rat, cols)
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, markovErrorf(opNewChain, err)
			}
			r, ok := ratFromFloat(v)
			if !ok {
				return nil, markovErrorf(opNewChain, &InvalidProbabilityError{
					Row: i, Col: j, Value: strconv.FormatFloat(v, 'g', -1, 64), Reason: ReasonNotFinite,
				})
			}
			probs[i][j] = r
		}
	}

	return newChain(probs, gatherOptions(opts...))
}

// NewChainRat prepares a chain from exact rational rows. The rows are copied;
// the caller keeps ownership of its slices and values.
//
// Errors:
//   - *DimensionMismatchError for empty, non-square or ragged input;
//   - *InvalidProbabilityError for nil entries (ReasonMissing) and, unless
//     WithoutValidation is set, for entries outside [0,1] or sums off 1;
//   - ErrBadEliminationOrder.
func NewChainRat(rows [][]*big.Rat, opts ...Option) (*Chain, error) {
	n := len(rows)
	if n == 0 {
		return nil, markovErrorf(opNewChain, &DimensionMismatchError{Row: -1})
	}
	probs := make([][]*big.Rat, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, markovErrorf(opNewChain, &DimensionMismatchError{Row: i, Want: n, Got: len(row)})
		}
		probs[i] = make([]*big.Rat, n)
		for j, p := range row {
			if p == nil {
				return nil, markovErrorf(opNewChain, &InvalidProbabilityError{
					Row: i, Col: j, Value: "<nil>", Reason: ReasonMissing,
				})
			}
			probs[i][j] = new(big.Rat).Set(p)
		}
	}

	return newChain(probs, gatherOptions(opts...))
}

// newChain finishes construction over an owned, square, non-empty matrix.
func newChain(probs [][]*big.Rat, o Options) (*Chain, error) {
	n := len(probs)
	if o.validate {
		if err := validateStochastic(probs, o.convention, o.tolerance); err != nil {
			return nil, markovErrorf(opNewChain, err)
		}
	}
	if err := validateOrder(o.order, n); err != nil {
		return nil, markovErrorf(opNewChain, err)
	}

	eqs := make([]*Equation, n)
	row := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row[j] = inflow(probs, o.convention, i, j)
		}
		eqs[i] = NewEquation(i, row)
	}

	o.logger.Debug("chain prepared",
		"states", n,
		"convention", o.convention.String(),
		"validate", o.validate,
	)

	return &Chain{n: n, probs: probs, eqs: eqs, opts: o}, nil
}

// inflow returns the probability of moving from state j into state i.
func inflow(probs [][]*big.Rat, c Convention, i, j int) *big.Rat {
	if c == RowStochastic {
		return probs[j][i]
	}

	return probs[i][j]
}

// validateStochastic checks entries first (row-major), then the sums along
// the axis named by c. The first violation wins.
func validateStochastic(probs [][]*big.Rat, c Convention, tolerance float64) error {
	one := big.NewRat(1, 1)
	for i, row := range probs {
		for j, p := range row {
			if p.Sign() < 0 || p.Cmp(one) > 0 {
				return &InvalidProbabilityError{Row: i, Col: j, Value: p.RatString(), Reason: ReasonOutOfRange}
			}
		}
	}

	tol := new(big.Rat).SetFloat64(tolerance) // finite, checked by WithTolerance
	n := len(probs)
	diff := new(big.Rat)
	for k := 0; k < n; k++ {
		sum := new(big.Rat)
		for l := 0; l < n; l++ {
			if c == RowStochastic {
				sum.Add(sum, probs[k][l])
			} else {
				sum.Add(sum, probs[l][k])
			}
		}
		if diff.Sub(sum, one).Abs(diff).Cmp(tol) <= 0 {
			continue
		}
		if c == RowStochastic {
			return &InvalidProbabilityError{Row: k, Col: -1, Value: sum.RatString(), Reason: ReasonSum}
		}

		return &InvalidProbabilityError{Row: -1, Col: k, Value: sum.RatString(), Reason: ReasonSum}
	}

	return nil
}

// validateOrder accepts nil (default order) or a permutation of 1..n-1.
func validateOrder(order []int, n int) error {
	if order == nil {
		return nil
	}
	if len(order) != n-1 {
		return ErrBadEliminationOrder
	}
	seen := make([]bool, n)
	for _, s := range order {
		if s < 1 || s >= n || seen[s] {
			return ErrBadEliminationOrder
		}
		seen[s] = true
	}

	return nil
}

// ratFromFloat converts v through its shortest decimal representation.
// It reports false for NaN and ±Inf.
func ratFromFloat(v float64) (*big.Rat, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}

	return new(big.Rat).SetString(strconv.FormatFloat(v, 'g', -1, 64))
}

// Size returns the number of states N.
func (c *Chain) Size() int { return c.n }

// Convention returns the orientation the input matrix was read with.
func (c *Chain) Convention() Convention { return c.opts.convention }

// Probability returns a copy of the input entry (i, j), as supplied.
func (c *Chain) Probability(i, j int) (*big.Rat, error) {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return nil, ErrOutOfRange
	}

	return new(big.Rat).Set(c.probs[i][j]), nil
}

// Equation returns a deep copy of state i's balance equation in its current
// form: as built before Solve, fully reduced to π_i = c·π_0 after it.
func (c *Chain) Equation(i int) (*Equation, error) {
	if i < 0 || i >= c.n {
		return nil, ErrOutOfRange
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.eqs[i].Clone(), nil
}

// IsDegenerate reports whether err stems from an equation that cannot be
// solved for its own state, returning that state.
func IsDegenerate(err error) (state int, ok bool) {
	var de *DegenerateEquationError
	if errors.As(err, &de) {
		return de.State, true
	}

	return 0, false
}
