// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/katalvlaran/lvmul/config"
	"github.com/spf13/cobra"
)

// cli carries the resolved configuration from the root command to its
// subcommands.
type cli struct {
	flagged config.Config // flag targets
	cfg     config.Config // file + explicit flags, set in PersistentPreRunE
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{flagged: config.Default()}

	root := &cobra.Command{
		Use:           "lvmul",
		Short:         "Parallel matrix multiplication on a fixed worker pool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(cmd.Flags(), c.flagged)
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.cfg, c.logger = cfg, logger

			return nil
		},
	}
	c.flagged.Bind(root.PersistentFlags())

	root.AddCommand(
		newMultiplyCmd(c),
		newServeCmd(c),
		newCountersCmd(c),
	)

	return root
}
