// SPDX-License-Identifier: MIT
package markov_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/steadystate/markov"
	"github.com/katalvlaran/steadystate/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solvedSample(t *testing.T) *markov.Distribution {
	t.Helper()
	m, err := matrix.NewDenseFrom(sampleRows)
	require.NoError(t, err)
	pi, err := markov.SteadyState(m)
	require.NoError(t, err)

	return pi
}

func TestDistribution_Accessors(t *testing.T) {
	t.Parallel()

	pi := solvedSample(t)
	require.Equal(t, 3, pi.Len())

	r, err := pi.Rat(1)
	require.NoError(t, err)
	assert.Equal(t, "11/23", r.RatString())
	r.SetInt64(0)
	again, _ := pi.Rat(1)
	assert.Equal(t, "11/23", again.RatString(), "Rat returns a copy")

	all := pi.Rats()
	require.Len(t, all, 3)
	all[0].SetInt64(5)
	assert.Equal(t, "[19/69 11/23 17/69]", pi.String())

	_, err = pi.Rat(3)
	assert.ErrorIs(t, err, markov.ErrOutOfRange)
	_, err = pi.Float64(-1)
	assert.ErrorIs(t, err, markov.ErrOutOfRange)

	fs := pi.Float64s()
	assert.InDeltaSlice(t, []float64{19.0 / 69, 33.0 / 69, 17.0 / 69}, fs, 1e-15)
	assert.Equal(t, 0, pi.Sum().Cmp(big.NewRat(1, 1)))
}

func TestDistribution_ResidualErrors(t *testing.T) {
	t.Parallel()

	pi := solvedSample(t)

	_, err := pi.Residual(nil, markov.ColumnStochastic)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	_, err = pi.Residual(rect, markov.ColumnStochastic)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	small, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = pi.Residual(small, markov.ColumnStochastic)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDistribution_ResidualDetectsWrongConvention(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom(sampleRows)
	require.NoError(t, err)
	pi := solvedSample(t)

	good, err := pi.Residual(m, markov.ColumnStochastic)
	require.NoError(t, err)
	bad, err := pi.Residual(m, markov.RowStochastic)
	require.NoError(t, err)
	assert.Less(t, good, 1e-12)
	assert.Greater(t, bad, 1e-3)
}
