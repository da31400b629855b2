// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/steadystate/internal/render"
	"github.com/katalvlaran/steadystate/markov"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	var preset string
	cmd := &cobra.Command{
		Use:   "check [chain.yaml]",
		Short: "validate a chain without solving it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadChain(args, preset)
			if err != nil {
				return err
			}
			logger, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			chain, err := markov.NewChainRat(cfg.Rows(), cfg.Options(logger)...)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), render.CheckLine(cfg.Name, 0, false, err))

				return shownError{err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.CheckLine(cfg.Name, chain.Size(), chain.Irreducible(), nil))

			return nil
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "", "check a built-in chain")

	return cmd
}
