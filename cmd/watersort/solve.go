package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/watersort/batch"
	"github.com/katalvlaran/watersort/puzzle"
	"github.com/katalvlaran/watersort/render"
	"github.com/katalvlaran/watersort/search"
	"github.com/katalvlaran/watersort/solver"
)

// searchFlags are the knobs shared by solve and compare.
type searchFlags struct {
	heuristic     string
	dedup         bool
	maxExpansions int
	timeout       time.Duration
}

func (sf *searchFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&sf.heuristic, "heuristic", "zero",
		fmt.Sprintf("Heuristic for GR1/AS1/AS2 (%s)", strings.Join(puzzle.HeuristicNames(), ", ")))
	flags.BoolVar(&sf.dedup, "dedup", false, "Skip expanding states that were already expanded")
	flags.IntVar(&sf.maxExpansions, "max-expansions", 0, "Abort after this many expansions (0 = unbounded)")
	flags.DurationVar(&sf.timeout, "timeout", 0, "Abort after this long (0 = unbounded)")
}

// signalContext cancels on interrupt and after the optional timeout.
func (sf *searchFlags) signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	if sf.timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, sf.timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func newSolveCmd(rf *rootFlags) *cobra.Command {
	var (
		sf        searchFlags
		code      string
		visualize bool
		bottles   bool
		stats     bool
	)
	cmd := &cobra.Command{
		Use:   "solve <state>",
		Short: "Solve one puzzle and print plan;cost;expanded",
		Long: `Solve one puzzle with the chosen strategy and print the result as
"plan;cost;expanded", or NOSOLUTION when the search space is exhausted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := puzzle.HeuristicByName(sf.heuristic)
			if err != nil {
				return err
			}
			ctx, cancel := sf.signalContext(cmd.Context())
			defer cancel()

			out := cmd.OutOrStdout()
			opts := []solver.Option{
				solver.WithContext(ctx),
				solver.WithLogger(rf.log),
				solver.WithHeuristic(h),
				solver.WithMaxExpansions(sf.maxExpansions),
			}
			if sf.dedup {
				opts = append(opts, solver.WithDeduplication())
			}
			if visualize {
				opts = append(opts, solver.WithVisualize(out,
					render.WithBottles(bottles),
					render.WithColor(useColor(rf.logOpts.Color)),
				))
			}

			res, err := solver.Run(args[0], code, opts...)
			switch {
			case errors.Is(err, solver.ErrInvalidStrategy):
				return fmt.Errorf("%s: %w", solver.InvalidStrategy, err)
			case errors.Is(err, search.ErrNoSolution):
				fmt.Fprintln(out, solver.NoSolution)
			case err != nil:
				return err
			default:
				fmt.Fprintln(out, res)
			}
			if stats && res != nil {
				fmt.Fprintf(out, "expanded=%d generated=%d max_frontier=%d elapsed=%s\n",
					res.Expanded, res.Generated, res.MaxFrontier, res.Elapsed.Round(time.Microsecond))
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&code, "strategy", "s", "BF", fmt.Sprintf("Strategy code (%s)", strings.Join(solver.Codes(), ", ")))
	flags.BoolVarP(&visualize, "visualize", "v", false, "Print every state on the solution path")
	flags.BoolVar(&bottles, "bottles", false, "Draw bottles when visualizing")
	flags.BoolVar(&stats, "stats", false, "Print search counters")
	sf.register(cmd)
	return cmd
}

func newCompareCmd(rf *rootFlags) *cobra.Command {
	var (
		sf      searchFlags
		codes   []string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "compare <state>",
		Short: "Run several strategies on one puzzle in parallel and tabulate them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := sf.signalContext(cmd.Context())
			defer cancel()

			sum, err := batch.Compare(ctx, args[0], codes, batch.Config{
				Workers:       workers,
				Heuristic:     sf.heuristic,
				Dedup:         sf.dedup,
				MaxExpansions: sf.maxExpansions,
			}, batch.WithLogger(rf.log))
			if err != nil {
				return err
			}
			return sum.WriteTable(cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVar(&codes, "strategies", solver.Codes(), "Strategy codes to compare")
	flags.IntVar(&workers, "workers", 0, "Worker pool size (0 = number of CPUs)")
	sf.register(cmd)
	return cmd
}

func newBatchCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <config.yaml>",
		Short: "Solve every puzzle of a YAML batch file with every listed strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := batch.LoadFile(args[0])
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			sum, err := batch.NewRunner(cfg, batch.WithLogger(rf.log)).Run(ctx)
			if sum != nil {
				if werr := sum.WriteTable(cmd.OutOrStdout()); werr != nil {
					return werr
				}
			}
			return err
		},
	}
}

// useColor resolves the --color flag for bottle drawings on stdout.
func useColor(mode string) bool {
	switch mode {
	case "always", "on":
		return true
	case "never", "off":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
