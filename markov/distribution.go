// SPDX-License-Identifier: MIT

package markov

import (
	"math"
	"math/big"
	"strings"

	"github.com/katalvlaran/steadystate/matrix"
)

// Len returns the number of states.
func (d *Distribution) Len() int { return len(d.values) }

// Rat returns a copy of π_i.
func (d *Distribution) Rat(i int) (*big.Rat, error) {
	if i < 0 || i >= len(d.values) {
		return nil, ErrOutOfRange
	}

	return new(big.Rat).Set(d.values[i]), nil
}

// Rats returns copies of every π_i.
func (d *Distribution) Rats() []*big.Rat {
	out := make([]*big.Rat, len(d.values))
	for i, v := range d.values {
		out[i] = new(big.Rat).Set(v)
	}

	return out
}

// Float64 returns π_i rounded to the nearest float64.
func (d *Distribution) Float64(i int) (float64, error) {
	if i < 0 || i >= len(d.values) {
		return 0, ErrOutOfRange
	}
	f, _ := d.values[i].Float64()

	return f, nil
}

// Float64s returns the whole vector as float64 values.
func (d *Distribution) Float64s() []float64 {
	out := make([]float64, len(d.values))
	for i, v := range d.values {
		out[i], _ = v.Float64()
	}

	return out
}

// Sum returns Σπ_i. For a solved distribution it is exactly 1.
func (d *Distribution) Sum() *big.Rat {
	sum := new(big.Rat)
	for _, v := range d.values {
		sum.Add(sum, v)
	}

	return sum
}

// String renders the exact vector, e.g. "[19/69 11/23 17/69]".
func (d *Distribution) String() string {
	parts := make([]string, len(d.values))
	for i, v := range d.values {
		parts[i] = v.RatString()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Residual returns max_i |(Mπ)_i − π_i| in float64 for the inflow form of m
// under convention c (m itself for ColumnStochastic, its transpose for
// RowStochastic). A stationary π gives a residual at rounding level.
//
// Implementation:
//   - Stage 1: nil/square/finite guards via the matrix validators.
//   - Stage 2: orient with matrix.Transpose if needed, then matrix.MatVec.
//   - Stage 3: max-abs difference.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square or N≠Len),
//     matrix.ErrNaNInf; all wrapped with the "Residual" tag.
//
// Complexity:
//   - Time O(N²), Space O(N²) when transposing.
func (d *Distribution) Residual(m matrix.Matrix, c Convention) (float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, markovErrorf(opResidual, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return 0, markovErrorf(opResidual, err)
	}

	in := m
	if c == RowStochastic {
		t, err := matrix.Transpose(m)
		if err != nil {
			return 0, markovErrorf(opResidual, err)
		}
		in = t
	}

	pi := d.Float64s()
	y, err := matrix.MatVec(in, pi)
	if err != nil {
		return 0, markovErrorf(opResidual, err)
	}

	worst := 0.0
	for i := range y {
		worst = math.Max(worst, math.Abs(y[i]-pi[i]))
	}

	return worst, nil
}
