// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/steadystate/internal/config"
	"github.com/katalvlaran/steadystate/internal/render"
	"github.com/katalvlaran/steadystate/markov"
	"github.com/katalvlaran/steadystate/matrix"
)

type solveFlags struct {
	preset        string
	convention    string
	rowStochastic bool
	tolerance     float64
	maxPasses     int
	noValidate    bool
	plot          bool
	showMatrix    bool
}

func newSolveCmd(g *globalFlags) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [chain.yaml]",
		Short: "compute the stationary distribution",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadChain(args, f.preset)
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)

			return runSolve(cmd.OutOrStdout(), cmd.ErrOrStderr(), g, f, cfg)
		},
	}
	cmd.Flags().StringVar(&f.preset, "preset", "", "solve a built-in chain (see: steadystate presets)")
	cmd.Flags().StringVar(&f.convention, "convention", config.DefaultConvention, "column or row (overrides the file)")
	cmd.Flags().BoolVar(&f.rowStochastic, "row-stochastic", false, "shorthand for --convention row")
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", config.DefaultTolerance, "allowed |Σ-1| per stochastic sum")
	cmd.Flags().IntVar(&f.maxPasses, "max-passes", 0, "elimination pass cap (0: number of states)")
	cmd.Flags().BoolVar(&f.noValidate, "no-validate", false, "skip range and sum checks")
	cmd.Flags().BoolVar(&f.plot, "plot", false, "plot the distribution (text format only)")
	cmd.Flags().BoolVar(&f.showMatrix, "matrix", false, "print the transition matrix with its sums (text format only)")
	cmd.MarkFlagsMutuallyExclusive("convention", "row-stochastic")

	return cmd
}

// apply overlays explicitly set flags on the loaded config.
func (f *solveFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	switch {
	case cmd.Flags().Changed("convention"):
		cfg.Convention = f.convention
	case f.rowStochastic:
		cfg.Convention = markov.RowStochastic.String()
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance = f.tolerance
	}
	if cmd.Flags().Changed("max-passes") {
		cfg.MaxPasses = f.maxPasses
	}
	if f.noValidate {
		off := false
		cfg.Checks = &off
	}
}

func runSolve(out, errOut io.Writer, g *globalFlags, f *solveFlags, cfg *config.Config) error {
	format, err := render.ParseFormat(g.format)
	if err != nil {
		return err
	}
	logger, err := g.logger(errOut)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	chain, err := markov.NewChainRat(cfg.Rows(), cfg.Options(logger)...)
	if err != nil {
		return err
	}
	logger.Info("solving", "chain", cfg.Name, "states", chain.Size(), "convention", chain.Convention().String())

	pi, err := chain.Solve()
	if err != nil {
		return degenerateError(cfg, err)
	}
	names := cfg.StateNames(chain.Size())
	report := render.NewReport(cfg.Name, chain.Convention(), names, pi, 0)

	// Unvalidated entries may overflow float64; the exact result still stands.
	dense, err := matrix.NewDenseFrom(cfg.Float64Rows())
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		logger.Warn("matrix has no float64 rendition; skipping residual", "chain", cfg.Name)
		report.Residual = nil
		dense = nil
	case err != nil:
		return err
	default:
		residual, err := pi.Residual(dense, chain.Convention())
		if err != nil {
			return err
		}
		report.Residual = &residual
	}

	if format == render.FormatText && f.showMatrix && dense != nil {
		table, err := render.MatrixTable(dense, names, chain.Convention(), g.precision)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, table)
	}
	if err := render.Write(out, report, format, g.precision); err != nil {
		return err
	}
	if format == render.FormatText && f.plot {
		fmt.Fprintln(out, render.Plot(report))
	}

	return nil
}

// degenerateError names the state that elimination could not isolate.
func degenerateError(cfg *config.Config, err error) error {
	state, ok := markov.IsDegenerate(err)
	switch {
	case !ok:
		return err
	case state == 0:
		return fmt.Errorf("state %q is absorbing, so no distribution covers the other states: %w",
			cfg.StateName(state), err)
	default:
		return fmt.Errorf("state %q cannot be isolated (absorbing or outside the class of %q): %w",
			cfg.StateName(state), cfg.StateName(0), err)
	}
}
