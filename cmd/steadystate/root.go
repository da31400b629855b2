// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/steadystate/internal/config"
	"github.com/katalvlaran/steadystate/internal/render"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	logLevel  string
	format    string
	precision int
}

var errNoChain = errors.New("need a chain file or --preset")

// shownError wraps an error the command has already printed to stdout.
type shownError struct{ err error }

func (e shownError) Error() string { return e.err.Error() }
func (e shownError) Unwrap() error { return e.err }

// reportError prints err to w unless a command already reported it.
func reportError(w io.Writer, err error) {
	var shown shownError
	if errors.As(err, &shown) {
		return
	}
	fmt.Fprintln(w, render.Failure.Render("error:"), err)
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "steadystate",
		Short:         "stationary distributions of Markov chains by exact substitution",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&g.format, "format", string(render.FormatText), "output format (text, json, yaml)")
	rootCmd.PersistentFlags().IntVar(&g.precision, "precision", render.DefaultPrecision, "decimal places in text output")

	rootCmd.AddCommand(
		newSolveCmd(g),
		newCheckCmd(g),
		newPresetsCmd(),
		newSampleCmd(),
	)

	return rootCmd
}

// logger builds the stderr text logger for the chosen level.
func (g *globalFlags) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// loadChain resolves the chain from --preset or the single file argument.
func loadChain(args []string, preset string) (*config.Config, error) {
	switch {
	case preset != "" && len(args) > 0:
		return nil, fmt.Errorf("use either a chain file or --preset, not both")
	case preset != "":
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}

		return cfg, nil
	case len(args) == 1:
		return config.Load(args[0])
	default:
		return nil, errNoChain
	}
}
