// SPDX-License-Identifier: MIT

// Package config loads and saves chain description files (YAML) and holds the
// built-in preset chains.
//
// A chain file looks like:
//
//	name: weather
//	convention: row        # or "column" (default)
//	tolerance: 1e-9
//	states: [sunny, rainy]
//	matrix:
//	  - [0.9, 0.1]
//	  - [1/2, 1/2]
//
// Matrix entries are exact: decimals, integers and "a/b" fractions are all
// read as rationals.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/steadystate/markov"
)

const (
	DefaultName       = "chain"
	DefaultConvention = "column"
	DefaultTolerance  = markov.DefaultTolerance
)

var (
	// ErrConvention is returned for a convention other than "column" or "row".
	ErrConvention = errors.New("config: convention must be \"column\" or \"row\"")

	// ErrStateNames is returned when the state list does not name every
	// state exactly once.
	ErrStateNames = errors.New("config: states must name every state exactly once")

	// ErrEmptyMatrix is returned for a missing or empty matrix.
	ErrEmptyMatrix = errors.New("config: matrix is empty")

	// ErrProbability is returned for a matrix entry that is not a number.
	ErrProbability = errors.New("config: matrix entry is not a rational number")

	// ErrTolerance is returned for a negative or non-finite tolerance.
	ErrTolerance = errors.New("config: tolerance must be finite and non-negative")

	// ErrMaxPasses is returned for a negative pass cap.
	ErrMaxPasses = errors.New("config: max_passes must not be negative")
)

// Config describes one chain and how to solve it.
type Config struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Convention  string          `yaml:"convention"`
	Tolerance   float64         `yaml:"tolerance"`
	MaxPasses   int             `yaml:"max_passes,omitempty"`
	Checks      *bool           `yaml:"validate,omitempty"`
	States      []string        `yaml:"states,omitempty"`
	Matrix      [][]Probability `yaml:"matrix"`
}

// Probability is one exact matrix entry.
type Probability struct {
	r *big.Rat
}

// NewProbability wraps a copy of r.
func NewProbability(r *big.Rat) Probability {
	return Probability{r: new(big.Rat).Set(r)}
}

// ParseProbability reads "0.65", "1", "1/3" or "1e-3".
func ParseProbability(s string) (Probability, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Probability{}, fmt.Errorf("%w: %q", ErrProbability, s)
	}

	return Probability{r: r}, nil
}

// Rat returns a copy of the value; the zero Probability is 0.
func (p Probability) Rat() *big.Rat {
	if p.r == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.r)
}

// String prints a terminating decimal when exact, a fraction otherwise.
func (p Probability) String() string {
	r := p.Rat()
	if r.IsInt() {
		return r.RatString()
	}
	if n, exact := r.FloatPrec(); exact {
		return r.FloatString(n)
	}

	return r.RatString()
}

// UnmarshalYAML accepts any scalar that big.Rat can parse.
func (p *Probability) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrProbability)
	}
	parsed, err := ParseProbability(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = parsed

	return nil
}

// MarshalYAML emits decimals as plain floats and the rest as fractions.
func (p Probability) MarshalYAML() (interface{}, error) {
	s := p.String()
	tag := "!!float"
	switch {
	case p.Rat().IsInt():
		tag = "!!int"
	case !isDecimal(s):
		tag = "!!str"
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}, nil
}

func isDecimal(s string) bool {
	for _, c := range s {
		if c == '/' {
			return false
		}
	}

	return true
}

// DefaultConfig returns a config with defaults and no matrix.
func DefaultConfig() *Config {
	return &Config{
		Name:       DefaultName,
		Convention: DefaultConvention,
		Tolerance:  DefaultTolerance,
	}
}

// Load reads and validates a chain file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML over DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields config owns. Shape and stochastic checks of
// the matrix belong to markov.NewChain, which reports them with positions.
func (c *Config) Validate() error {
	if _, err := c.MarkovConvention(); err != nil {
		return err
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("%w: %v", ErrTolerance, c.Tolerance)
	}
	if c.MaxPasses < 0 {
		return fmt.Errorf("%w: %d", ErrMaxPasses, c.MaxPasses)
	}
	if len(c.Matrix) == 0 {
		return ErrEmptyMatrix
	}
	if len(c.States) == 0 {
		return nil
	}
	if len(c.States) != len(c.Matrix) {
		return fmt.Errorf("%w: %d names for %d states", ErrStateNames, len(c.States), len(c.Matrix))
	}
	seen := make(map[string]bool, len(c.States))
	for _, s := range c.States {
		if s == "" || seen[s] {
			return fmt.Errorf("%w: %q", ErrStateNames, s)
		}
		seen[s] = true
	}

	return nil
}

// MarkovConvention maps the convention field; empty means column.
func (c *Config) MarkovConvention() (markov.Convention, error) {
	switch c.Convention {
	case "", "column":
		return markov.ColumnStochastic, nil
	case "row":
		return markov.RowStochastic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrConvention, c.Convention)
	}
}

// Rows returns the matrix as fresh rationals, ready for markov.NewChainRat.
func (c *Config) Rows() [][]*big.Rat {
	rows := make([][]*big.Rat, len(c.Matrix))
	for i, row := range c.Matrix {
		rows[i] = make([]*big.Rat, len(row))
		for j, p := range row {
			rows[i][j] = p.Rat()
		}
	}

	return rows
}

// Float64Rows returns the matrix rounded to float64, for display and
// residual checks.
func (c *Config) Float64Rows() [][]float64 {
	rows := make([][]float64, len(c.Matrix))
	for i, row := range c.Matrix {
		rows[i] = make([]float64, len(row))
		for j, p := range row {
			rows[i][j], _ = p.Rat().Float64()
		}
	}

	return rows
}

// Options translates the solver settings. Call Validate first.
func (c *Config) Options(logger *slog.Logger) []markov.Option {
	conv, _ := c.MarkovConvention()
	opts := []markov.Option{
		markov.WithConvention(conv),
		markov.WithTolerance(c.Tolerance),
		markov.WithLogger(logger),
	}
	if c.MaxPasses > 0 {
		opts = append(opts, markov.WithMaxPasses(c.MaxPasses))
	}
	if c.Checks != nil && !*c.Checks {
		opts = append(opts, markov.WithoutValidation())
	}

	return opts
}

// StateName returns the configured name of state i, or "π_<i+1>".
func (c *Config) StateName(i int) string {
	if i >= 0 && i < len(c.States) {
		return c.States[i]
	}

	return fmt.Sprintf("π_%d", i+1)
}

// StateNames returns a name for each of the n states.
func (c *Config) StateNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = c.StateName(i)
	}

	return names
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.States = slices.Clone(c.States)
	if c.Checks != nil {
		v := *c.Checks
		out.Checks = &v
	}
	out.Matrix = make([][]Probability, len(c.Matrix))
	for i, row := range c.Matrix {
		out.Matrix[i] = make([]Probability, len(row))
		for j, p := range row {
			out.Matrix[i][j] = NewProbability(p.Rat())
		}
	}

	return &out
}
