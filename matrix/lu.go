// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opLU      = "LU"
	opLUSolve = "LUSolve"
)

// LU performs Doolittle decomposition without pivoting: m = L·U with L unit
// lower triangular and U upper triangular.
//
// Implementation:
//   - Stage 1: validate m is square, allocate L (unit diagonal) and U.
//   - Stage 2: for each pivot i, fill U's row i (j ≥ i), then L's column i
//     (j > i) dividing by U[i][i].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch;
//   - ErrSingular when a pivot U[i][i] is exactly 0.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - No pivoting: reorder rows yourself when a leading minor may vanish.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	l, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1
	}

	var (
		i, j, k int
		sum, a  float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			if a, err = m.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opLU, err)
			}
			u.data[i*n+j] = a - sum
		}
		pivot := u.data[i*n+i]
		if pivot == 0 {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			if a, err = m.At(j, i); err != nil {
				return nil, nil, matrixErrorf(opLU, err)
			}
			l.data[j*n+i] = (a - sum) / pivot
		}
	}

	return l, u, nil
}

// LUSolve solves m·x = b through LU, forward then back substitution.
//
// Errors:
//   - those of LU; ErrDimensionMismatch when len(b) != m.Rows().
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LUSolve(m Matrix, b []float64) ([]float64, error) {
	l, u, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	n := l.r
	if err = ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	// L·y = b
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		acc := b[i]
		for k := 0; k < i; k++ {
			acc -= l.data[i*n+k] * y[k]
		}
		y[i] = acc
	}
	// U·x = y
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		acc := y[i]
		for k := i + 1; k < n; k++ {
			acc -= u.data[i*n+k] * x[k]
		}
		x[i] = acc / u.data[i*n+i]
	}

	return x, nil
}
