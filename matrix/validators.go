// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/finite checks here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Square).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (use ValidateSquareNonNil otherwise).
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m for NaN or ±Inf entries.
//
// Implementation:
//   - Stage 1: NotNil guard.
//   - Stage 2: fixed i→j scan; the first offending cell is reported with coordinates.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (wrapped with "(i,j)").
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Matrices built with WithNoValidateNaNInf may carry non-finite values;
//     run this before any exact conversion.
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}
