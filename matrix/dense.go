// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(r*c) copy; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxFrom = "From" // ctor tag for NewDenseFrom
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and apply the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a fresh Dense.
//
// Implementation:
//   - Stage 1: validate len(rows)>0 and every row has the same positive length.
//   - Stage 2: copy values row by row through Set, so the numeric policy applies.
//
// Behavior highlights:
//   - The input slice is never retained; mutations after the call do not leak in.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when a row length differs from the first row.
//   - ErrNaNInf (wrapped with coordinates) under the default finite-only policy.
//
// Determinism:
//   - Fixed i→j copy order; the first offending cell is reported.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use this to adapt literal transition tables in tests and examples.
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols, opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, denseErrorf(ctxFrom, i, len(rows[i]), ErrDimensionMismatch)
		}
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range input.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf (both wrapped with coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix, preserving its numeric policy.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// String implements fmt.Stringer for easy debugging: one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
