// SPDX-License-Identifier: MIT
package markov_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/steadystate/markov"
	"github.com/stretchr/testify/assert"
)

// TestOptions_Panics: nonsensical option values are programmer errors.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { markov.WithTolerance(-1) })
	assert.Panics(t, func() { markov.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { markov.WithTolerance(math.Inf(1)) })
	assert.Panics(t, func() { markov.WithConvention(markov.Convention(7)) })
	assert.Panics(t, func() { markov.WithMaxPasses(0) })

	assert.NotPanics(t, func() { markov.WithTolerance(0) })
	assert.NotPanics(t, func() { markov.WithMaxPasses(1) })
	assert.NotPanics(t, func() { markov.WithEliminationOrder() })
}

func TestConvention_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "column", markov.ColumnStochastic.String())
	assert.Equal(t, "row", markov.RowStochastic.String())
	assert.Equal(t, "unknown", markov.Convention(7).String())
}
