// SPDX-License-Identifier: MIT
// Package matrix provides the universal operations the solver needs on any
// Matrix implementation: transpose, matrix-vector product and axis sums.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast-path over the flat buffer and an
//     interface fallback through At/Set with the same loop order.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products and sums.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opRowSums   = "RowSums"
	opColSums   = "ColSums"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new Dense matrix that is the transpose of m.
//
// Implementation:
//   - Stage 1: NotNil guard, allocate result with flipped dimensions.
//   - Stage 2: fast-path data[i*cols+j] → res.data[j*rows+i] for *Dense;
//     otherwise At/Set fallback.
//
// Errors:
//   - ErrNilMatrix; any At/Set failure from a foreign implementation.
//
// Determinism:
//   - Fixed i→j loops in both paths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - The solver transposes row-stochastic input with this kernel so that row i
//     becomes the inflow to state i.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows, WithNoValidateNaNInf()) // values are copied verbatim
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		res.validateNaNInf = dm.validateNaNInf

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m · x.
//
// Implementation:
//   - Stage 1: NotNil guard, ValidateVecLen(x, Cols).
//   - Stage 2: row-major dot products (fast-path on *Dense).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
//
// AI-Hints:
//   - Residual checks of a stationary vector are MatVec(M, π) - π.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	if d, ok := m.(*Dense); ok {
		var base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)).
// Complexity: O(rc).
//
// AI-Hints: a row-stochastic transition matrix has RowSums == ones.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return MatVec(m, ones(m.Cols()))
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Implementation: Transpose then MatVec with ones(rows).
// Complexity: O(rc).
//
// AI-Hints: a column-stochastic transition matrix has ColSums == ones.
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return MatVec(mt, ones(mt.Cols()))
}

// ones allocates an all-ones vector of length n.
func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0
	}

	return v
}
