// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/steadystate/internal/config"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list built-in chains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d states\t%s\n", name, len(p.Matrix), p.Description)
			}

			return w.Flush()
		},
	}
}

func newSampleCmd() *cobra.Command {
	var preset string
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "print a chain file to start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadChain(nil, preset)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "sample", "preset to print")

	return cmd
}
