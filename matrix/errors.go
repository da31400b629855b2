// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an operation
// tag via matrixErrorf/validatorErrorf) and tests match them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
// If context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer
// boundary; callers still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions: a non-square input
	// where a square one is required, ragged rows on ingestion, or a vector whose
	// length does not match the matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular indicates a zero pivot during LU decomposition.
	ErrSingular = errors.New("matrix: singular matrix (zero pivot)")
)
