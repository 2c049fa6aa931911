package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/watersort/internal/logging"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	logOpts logging.Opts
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{log: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:   "watersort",
		Short: "Solve water-sort puzzles with classic search strategies",
		Long: `watersort runs breadth-first, depth-first, uniform-cost, greedy and A*
search over water-sort puzzles given in the "ab;ba;ee" encoding: one group per
bottle separated by ';', surface layer first, 'e' for free capacity.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := rf.logOpts.NewLogger()
			if err != nil {
				return err
			}
			rf.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = rf.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rf.logOpts.Level, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&rf.logOpts.Encoding, "log-format", "console", "Log encoding (console, json)")
	flags.StringVar(&rf.logOpts.Color, "color", "auto", "Color mode for logs and drawings (auto, always, never)")

	rootCmd.AddCommand(
		newSolveCmd(rf),
		newCompareCmd(rf),
		newBatchCmd(rf),
	)
	return rootCmd
}
