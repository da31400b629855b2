// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/steadystate/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", dense(1, 1), nil},
		{"3x3", dense(3, 3), nil},
		{"2x3", dense(2, 3), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

// TestValidateVecLen checks nil, short and exact vectors.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestValidateFinite ensures a relaxed matrix carrying NaN/Inf is caught.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))

	require.NoError(t, m.Set(1, 0, math.Inf(-1)))
	err = matrix.ValidateFinite(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,0)")

	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
