// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric container consumed by the
// steady-state solver, together with the small set of kernels and validators
// the solver and its callers need.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked two-dimensional float64 interface, and Dense,
//     its row-major implementation (NewDense, NewDenseFrom).
//   - Kernels: Transpose, MatVec, RowSums, ColSums, and LU / LUSolve for a
//     plain linear solve.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSquareNonNil,
//     ValidateVecLen, ValidateFinite.
//   - A numeric policy (WithValidateNaNInf / WithNoValidateNaNInf) that
//     decides whether NaN and ±Inf may be stored.
//
// All public functions return sentinel errors from errors.go (wrapped with an
// operation tag) and never panic on user input.
//
//	m, _ := matrix.NewDenseFrom([][]float64{{0.5, 0.25}, {0.5, 0.75}})
//	sums, _ := matrix.ColSums(m) // [1 1]: column-stochastic
package matrix
