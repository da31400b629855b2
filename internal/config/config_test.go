// SPDX-License-Identifier: MIT
package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steadystate/markov"
)

const weatherYAML = `
name: weather
convention: row
states: [sunny, rainy]
matrix:
  - [0.9, 0.1]
  - [1/2, "1/2"]
`

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultName, cfg.Name)
	assert.Equal(t, "column", cfg.Convention)
	assert.Equal(t, markov.DefaultTolerance, cfg.Tolerance)
	assert.ErrorIs(t, cfg.Validate(), ErrEmptyMatrix)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(weatherYAML))
	require.NoError(t, err)

	assert.Equal(t, "weather", cfg.Name)
	assert.Equal(t, DefaultTolerance, cfg.Tolerance, "default survives partial file")
	conv, err := cfg.MarkovConvention()
	require.NoError(t, err)
	assert.Equal(t, markov.RowStochastic, conv)

	rows := cfg.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "9/10", rows[0][0].RatString())
	assert.Equal(t, "1/2", rows[1][1].RatString())
	assert.Equal(t, []float64{0.5, 0.5}, cfg.Float64Rows()[1])

	assert.Equal(t, "sunny", cfg.StateName(0))
	assert.Equal(t, "π_3", cfg.StateName(2))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"bad entry", "matrix: [[half]]", ErrProbability},
		{"nested entry", "matrix: [[[1]]]", ErrProbability},
		{"convention", "convention: diagonal\nmatrix: [[1]]", ErrConvention},
		{"tolerance", "tolerance: -1\nmatrix: [[1]]", ErrTolerance},
		{"max passes", "max_passes: -2\nmatrix: [[1]]", ErrMaxPasses},
		{"empty", "name: x", ErrEmptyMatrix},
		{"state count", "states: [a]\nmatrix: [[1, 0], [0, 1]]", ErrStateNames},
		{"duplicate state", "states: [a, a]\nmatrix: [[1, 0], [0, 1]]", ErrStateNames},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_ValidateKey: the "validate" key and the Validate method coexist.
func TestParse_ValidateKey(t *testing.T) {
	cfg, err := Parse([]byte("validate: false\nmatrix: [[1/2, 1/2], [1/2, 1/2]]\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Checks)
	assert.False(t, *cfg.Checks)
	assert.NoError(t, cfg.Validate())

	cfg, err = Parse([]byte("matrix: [[1]]\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Checks, "absent key keeps the solver default")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	src := GetPreset("gambler")
	require.NotNil(t, src)
	off := false
	src.Checks = &off

	require.NoError(t, Save(path, src))
	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, src.Name, got.Name)
	assert.Equal(t, src.States, got.States)
	require.NotNil(t, got.Checks)
	assert.False(t, *got.Checks)
	for i := range src.Matrix {
		for j := range src.Matrix[i] {
			assert.Equal(t, 0, src.Matrix[i][j].Rat().Cmp(got.Matrix[i][j].Rat()), "(%d,%d)", i, j)
		}
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestProbability_String(t *testing.T) {
	for lit, want := range map[string]string{
		"0.65":  "0.65",
		"13/20": "0.65",
		"1/3":   "1/3",
		"1":     "1",
		"2/2":   "1",
		"1e-3":  "0.001",
	} {
		p, err := ParseProbability(lit)
		require.NoError(t, err, lit)
		assert.Equal(t, want, p.String(), lit)
	}
	assert.Equal(t, "0", Probability{}.String())
}

func TestOptions(t *testing.T) {
	cfg, err := Parse([]byte(weatherYAML))
	require.NoError(t, err)

	pi, err := markov.SteadyStateRat(cfg.Rows(), cfg.Options(nil)...)
	require.NoError(t, err)
	assert.Equal(t, "[5/6 1/6]", pi.String())

	// Invalid sums pass only with validation off.
	cfg.Matrix[0][0], _ = ParseProbability("0.8")
	_, err = markov.SteadyStateRat(cfg.Rows(), cfg.Options(nil)...)
	assert.ErrorIs(t, err, markov.ErrInvalidProbability)

	off := false
	cfg.Checks = &off
	cfg.MaxPasses = 3
	_, err = markov.SteadyStateRat(cfg.Rows(), cfg.Options(nil)...)
	assert.NoError(t, err)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"cycle", "gambler", "sample", "weather"}, ListPresets())
	assert.Nil(t, GetPreset("nonexistent"))

	want := map[string]string{
		"sample":  "[19/69 11/23 17/69]",
		"weather": "[5/6 1/6]",
		"cycle":   "[1/3 1/3 1/3]",
	}
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		require.NoError(t, cfg.Validate(), name)

		pi, err := markov.SteadyStateRat(cfg.Rows(), cfg.Options(nil)...)
		if name == "gambler" {
			state, ok := markov.IsDegenerate(err)
			assert.True(t, ok)
			assert.Equal(t, "broke", cfg.StateName(state))

			continue
		}
		require.NoError(t, err, name)
		assert.Equal(t, want[name], pi.String(), name)
	}
}

func TestGetPreset_ReturnsCopy(t *testing.T) {
	a := GetPreset("weather")
	a.States[0] = "changed"
	a.Matrix[0][0], _ = ParseProbability("0")

	b := GetPreset("weather")
	assert.Equal(t, "sunny", b.States[0])
	assert.Equal(t, "0.9", b.Matrix[0][0].String())
}
