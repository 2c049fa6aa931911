package solver

import (
	"errors"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/watersort/puzzle"
	"github.com/katalvlaran/watersort/render"
	"github.com/katalvlaran/watersort/search"
)

// Solve runs the strategy named by code on the encoded initial state and
// returns "plan;cost;expanded", NoSolution, InvalidStrategy or InvalidState.
// With visualize set, the solution steps are printed to stdout.
func Solve(encoding, code string, visualize bool) string {
	var opts []Option
	if visualize {
		opts = append(opts, WithVisualize(os.Stdout))
	}
	out, err := Run(encoding, code, opts...)
	switch {
	case errors.Is(err, ErrInvalidStrategy):
		return InvalidStrategy
	case errors.Is(err, puzzle.ErrMalformedState):
		return InvalidState
	case errors.Is(err, search.ErrNoSolution):
		return NoSolution
	case err != nil:
		return err.Error()
	}
	return out.String()
}

// Run parses encoding, searches with the strategy named by code and
// returns the Outcome.
//
// Errors: ErrInvalidStrategy, ErrOptionViolation, errors wrapping
// puzzle.ErrMalformedState, search.ErrNoSolution (the Outcome is still
// returned with its counters), ErrBudgetExceeded, or the context error.
func Run(encoding, code string, opts ...Option) (*Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	strategy, err := ParseStrategy(code)
	if err != nil {
		return nil, err
	}
	problem, err := puzzle.FromEncoding(encoding, puzzle.WithHeuristic(o.Heuristic))
	if err != nil {
		return nil, err
	}

	log := o.Logger.With(zap.String("strategy", code), zap.String("state", encoding))
	log.Debug("search started", zap.Bool("dedup", o.Deduplicate), zap.Int("max_expansions", o.MaxExpansions))

	start := time.Now()
	res, err := search.Search[puzzle.State](problem, strategy, searchOptions(o)...)
	out := &Outcome{Code: code, Strategy: strategy, Elapsed: time.Since(start)}
	if res != nil {
		out.Expanded = res.Expanded
		out.Generated = res.Generated
		out.MaxFrontier = res.MaxFrontier
	}
	fields := []zap.Field{
		zap.Int("expanded", out.Expanded),
		zap.Int("generated", out.Generated),
		zap.Duration("elapsed", out.Elapsed),
	}

	if err != nil {
		if errors.Is(err, search.ErrNoSolution) {
			log.Info("search exhausted", fields...)
			return out, err
		}
		log.Warn("search aborted", append(fields, zap.Error(err))...)
		return out, err
	}

	goal := res.Node()
	out.Solved = true
	out.Plan = res.Tree.Actions(goal.ID)
	out.Cost = goal.PathCost
	for _, n := range res.Tree.Path(goal.ID) {
		out.Steps = append(out.Steps, render.Step{State: n.State, Action: n.Action})
	}
	log.Info("search solved", append(fields, zap.Int("cost", out.Cost))...)

	if o.Visualize != nil {
		if err := render.New(o.Visualize, o.RenderOptions...).Steps(out.Steps); err != nil {
			log.Warn("visualization failed", zap.Error(err))
		}
	}
	return out, nil
}

// searchOptions translates solver options into engine options.
func searchOptions(o Options) []search.Option[puzzle.State] {
	opts := []search.Option[puzzle.State]{search.WithContext[puzzle.State](o.Ctx)}
	if o.Deduplicate {
		opts = append(opts, search.WithDeduplication[puzzle.State](puzzle.State.String))
	}
	if o.MaxExpansions > 0 {
		limit, selected := o.MaxExpansions, 0
		opts = append(opts, search.WithOnSelect[puzzle.State](func(search.Node[puzzle.State]) error {
			if selected++; selected > limit {
				return ErrBudgetExceeded
			}
			return nil
		}))
	}
	return opts
}
