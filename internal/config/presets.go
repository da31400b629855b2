// SPDX-License-Identifier: MIT

package config

import (
	"maps"
	"slices"
)

// Presets are built-in chains, keyed by name.
var Presets = map[string]*Config{
	"sample": {
		Name:        "sample",
		Description: "three-state column-stochastic chain",
		Convention:  "column",
		Tolerance:   DefaultTolerance,
		Matrix: grid(
			[]string{"0.65", "0.15", "0.1"},
			[]string{"0.25", "0.65", "0.4"},
			[]string{"0.1", "0.2", "0.5"},
		),
	},
	"weather": {
		Name:        "weather",
		Description: "two-state weather model, rows are today's weather",
		Convention:  "row",
		Tolerance:   DefaultTolerance,
		States:      []string{"sunny", "rainy"},
		Matrix: grid(
			[]string{"0.9", "0.1"},
			[]string{"0.5", "0.5"},
		),
	},
	"gambler": {
		Name:        "gambler",
		Description: "gambler's ruin with absorbing ends; has no unique stationary vector",
		Convention:  "column",
		Tolerance:   DefaultTolerance,
		States:      []string{"broke", "one", "two", "rich"},
		Matrix: grid(
			[]string{"1", "1/2", "0", "0"},
			[]string{"0", "0", "1/2", "0"},
			[]string{"0", "1/2", "0", "0"},
			[]string{"0", "0", "1/2", "1"},
		),
	},
	"cycle": {
		Name:        "cycle",
		Description: "periodic three-cycle a→b→c→a",
		Convention:  "column",
		Tolerance:   DefaultTolerance,
		States:      []string{"a", "b", "c"},
		Matrix: grid(
			[]string{"0", "0", "1"},
			[]string{"1", "0", "0"},
			[]string{"0", "1", "0"},
		),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}

	return cfg.Clone()
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	return slices.Sorted(maps.Keys(Presets))
}

// grid builds a matrix from literals; presets are static, so a bad literal
// is a programming error.
func grid(rows ...[]string) [][]Probability {
	out := make([][]Probability, len(rows))
	for i, row := range rows {
		out[i] = make([]Probability, len(row))
		for j, s := range row {
			p, err := ParseProbability(s)
			if err != nil {
				panic(err)
			}
			out[i][j] = p
		}
	}

	return out
}
