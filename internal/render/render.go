// SPDX-License-Identifier: MIT

// Package render turns chains and solved distributions into terminal text,
// JSON or YAML.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/steadystate/markov"
	"github.com/katalvlaran/steadystate/matrix"
)

// DefaultPrecision is the number of decimal places shown for probabilities.
const DefaultPrecision = 4

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrFormat is returned by ParseFormat for unknown names.
var ErrFormat = errors.New("render: format must be text, json or yaml")

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// StateResult is one solved state.
type StateResult struct {
	Name        string  `json:"name" yaml:"name"`
	Probability float64 `json:"probability" yaml:"probability"`
	Exact       string  `json:"exact" yaml:"exact"`
}

// Report is the outcome of one solve. Residual is nil when the matrix has
// no float64 rendition to check against.
type Report struct {
	Name       string        `json:"name" yaml:"name"`
	Convention string        `json:"convention" yaml:"convention"`
	States     []StateResult `json:"states" yaml:"states"`
	Residual   *float64      `json:"residual,omitempty" yaml:"residual,omitempty"`
}

// NewReport collects a solved distribution. names must cover every state.
func NewReport(name string, conv markov.Convention, names []string, pi *markov.Distribution, residual float64) Report {
	r := Report{Name: name, Convention: conv.String(), Residual: &residual}
	exact := pi.Rats()
	for i, p := range pi.Float64s() {
		r.States = append(r.States, StateResult{
			Name:        names[i],
			Probability: p,
			Exact:       exact[i].RatString(),
		})
	}

	return r
}

// Probabilities returns the float values in state order.
func (r Report) Probabilities() []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s.Probability
	}

	return out
}

// Write encodes r to w in format f. precision only affects FormatText.
func Write(w io.Writer, r Report, f Format, precision int) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	case FormatText:
		_, err := io.WriteString(w, Summary(r, precision)+"\n")

		return err
	default:
		return fmt.Errorf("%w: %q", ErrFormat, string(f))
	}
}

// Summary renders r as a titled panel with one row per state.
func Summary(r Report, precision int) string {
	var body bytes.Buffer
	tw := tabwriter.NewWriter(&body, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "state\tprobability\texact\n")
	for _, s := range r.States {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, FormatProbability(s.Probability, precision), s.Exact)
	}
	tw.Flush()

	lines := strings.Split(strings.TrimRight(body.String(), "\n"), "\n")
	lines[0] = Header.Render(lines[0])

	var sb strings.Builder
	sb.WriteString(Title.Render("stationary distribution: "+r.Name) + "\n")
	sb.WriteString(Label.Render("convention: ") + Value.Render(r.Convention) + "\n\n")
	sb.WriteString(strings.Join(lines, "\n") + "\n\n")
	sb.WriteString(Label.Render("residual max|Mπ−π|: "))
	if r.Residual != nil {
		sb.WriteString(Value.Render(fmt.Sprintf("%.3g", *r.Residual)))
	} else {
		sb.WriteString(Subtle.Render("n/a (entries overflow float64)"))
	}

	return Panel.Render(sb.String())
}

// FormatProbability rounds p to precision decimal places; a negative
// precision means DefaultPrecision.
func FormatProbability(p float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}

	return fmt.Sprintf("%.*f", precision, p)
}

// MatrixTable renders m with state names on both axes and the stochastic
// sums along the axis conv says must be 1: a Σ row for ColumnStochastic, a Σ
// column for RowStochastic.
func MatrixTable(m matrix.Matrix, names []string, conv markov.Convention, precision int) (string, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return "", err
	}
	n := m.Rows()
	if len(names) != n {
		return "", fmt.Errorf("render: %d names for %d states: %w", len(names), n, matrix.ErrDimensionMismatch)
	}

	var (
		sums []float64
		err  error
	)
	if conv == markov.RowStochastic {
		sums, err = matrix.RowSums(m)
	} else {
		sums, err = matrix.ColSums(m)
	}
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	tw := tabwriter.NewWriter(&body, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := append([]string{""}, names...)
	if conv == markov.RowStochastic {
		header = append(header, "Σ")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for i := 0; i < n; i++ {
		cells := []string{names[i]}
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return "", err
			}
			cells = append(cells, FormatProbability(v, precision))
		}
		if conv == markov.RowStochastic {
			cells = append(cells, FormatProbability(sums[i], precision))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	if conv != markov.RowStochastic {
		cells := []string{"Σ"}
		for _, s := range sums {
			cells = append(cells, FormatProbability(s, precision))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return "", err
	}

	lines := strings.Split(strings.TrimRight(body.String(), "\n"), "\n")
	lines[0] = Header.Render(lines[0])
	if conv != markov.RowStochastic {
		last := len(lines) - 1
		lines[last] = Subtle.Render(lines[last])
	}

	return Panel.Render(strings.Join(lines, "\n")), nil
}

// Plot draws the distribution over the states as a line chart. A single
// state is drawn as a flat line.
func Plot(r Report) string {
	data := r.Probabilities()
	if len(data) == 0 {
		return ""
	}
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	width := int(math.Max(float64(len(data)*8), 20))

	names := make([]string, len(r.States))
	for i, s := range r.States {
		names[i] = s.Name
	}

	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Caption("π over "+strings.Join(names, ", ")),
	)
}

// CheckLine renders the verdict of a validation-only run. A reducible chain
// is well formed but may have no unique stationary distribution.
func CheckLine(name string, n int, irreducible bool, err error) string {
	if err != nil {
		return Failure.Render("✗ "+name) + " " + err.Error()
	}
	if !irreducible {
		return OK.Render("✓ "+name) + Subtle.Render(fmt.Sprintf(" %d states, stochastic, ", n)) +
			Failure.Render("reducible")
	}

	return OK.Render("✓ "+name) + Subtle.Render(fmt.Sprintf(" %d states, stochastic, irreducible", n))
}
