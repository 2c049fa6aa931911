package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alitto/pond"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/katalvlaran/watersort/puzzle"
	"github.com/katalvlaran/watersort/search"
	"github.com/katalvlaran/watersort/solver"
)

// Status classifies a finished job.
type Status string

// Job statuses.
const (
	StatusSolved     Status = "solved"
	StatusNoSolution Status = "no-solution"
	StatusBudget     Status = "budget"
	StatusTimeout    Status = "timeout"
	StatusCancelled  Status = "cancelled"
	StatusError      Status = "error"
)

// Result is the outcome of one (puzzle, strategy) job.
type Result struct {
	Puzzle  string
	State   string
	Code    string
	Status  Status
	Outcome *solver.Outcome
	Err     error
}

// Summary aggregates a batch run. Results keep config order: puzzles
// outer, strategies inner.
type Summary struct {
	RunID    string
	Results  []Result
	Solved   int64
	Unsolved int64
	Failed   int64
	Elapsed  time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger; the default discards.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithOnResult registers a callback invoked from worker goroutines as each
// job finishes. It must be safe for concurrent use.
func WithOnResult(fn func(Result)) Option {
	return func(r *Runner) {
		if fn != nil {
			r.onResult = fn
		}
	}
}

// Runner executes a Config on a worker pool.
type Runner struct {
	cfg      *Config
	log      *zap.Logger
	onResult func(Result)
}

// NewRunner returns a Runner for a validated cfg.
func NewRunner(cfg *Config, opts ...Option) *Runner {
	r := &Runner{cfg: cfg, log: zap.NewNop(), onResult: func(Result) {}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run solves every (puzzle, strategy) pair, at most cfg.Workers at a time.
// Per-job failures are recorded in the Summary. Run itself fails on an
// invalid config, or with ctx.Err() when ctx ends before every job
// finished; the Summary then holds the jobs that were scheduled.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	h, _ := puzzle.HeuristicByName(r.cfg.Heuristic)

	runID := uuid.NewString()
	log := r.log.With(zap.String("run_id", runID))
	jobs := len(r.cfg.Puzzles) * len(r.cfg.Strategies)
	log.Info("batch started",
		zap.Int("jobs", jobs),
		zap.Int("workers", r.cfg.Workers),
		zap.String("heuristic", r.cfg.Heuristic),
	)

	var (
		solved   = atomic.NewInt64(0)
		unsolved = atomic.NewInt64(0)
		failed   = atomic.NewInt64(0)
		results  = make([]Result, jobs)
		start    = time.Now()
	)

	pool := pond.New(r.cfg.Workers, jobs, pond.Strategy(pond.Lazy()))
	var schedErr error
	idx := 0
schedule:
	for _, p := range r.cfg.Puzzles {
		for _, code := range r.cfg.Strategies {
			if err := ctx.Err(); err != nil {
				schedErr = err
				break schedule
			}
			i, p, code := idx, p, code
			idx++
			pool.Submit(func() {
				res := r.solve(ctx, p, code, h)
				results[i] = res
				switch res.Status {
				case StatusSolved:
					solved.Inc()
				case StatusNoSolution:
					unsolved.Inc()
				default:
					failed.Inc()
				}
				log.Debug("job finished",
					zap.String("puzzle", res.Puzzle),
					zap.String("strategy", res.Code),
					zap.String("status", string(res.Status)),
				)
				r.onResult(res)
			})
		}
	}
	pool.StopAndWait()
	if schedErr == nil {
		schedErr = ctx.Err()
	}

	sum := &Summary{
		RunID:    runID,
		Results:  results[:idx],
		Solved:   solved.Load(),
		Unsolved: unsolved.Load(),
		Failed:   failed.Load(),
		Elapsed:  time.Since(start),
	}
	log.Info("batch finished",
		zap.Int64("solved", sum.Solved),
		zap.Int64("unsolved", sum.Unsolved),
		zap.Int64("failed", sum.Failed),
		zap.Duration("elapsed", sum.Elapsed),
	)
	return sum, schedErr
}

// solve runs one job with its own Problem, timeout and budget.
func (r *Runner) solve(ctx context.Context, p Puzzle, code string, h puzzle.Heuristic) Result {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}
	opts := []solver.Option{
		solver.WithContext(ctx),
		solver.WithHeuristic(h),
		solver.WithMaxExpansions(r.cfg.MaxExpansions),
		solver.WithLogger(r.log.With(zap.String("puzzle", p.Name))),
	}
	if r.cfg.Dedup {
		opts = append(opts, solver.WithDeduplication())
	}

	out, err := solver.Run(p.State, code, opts...)
	res := Result{Puzzle: p.Name, State: p.State, Code: code, Outcome: out, Err: err}
	switch {
	case err == nil:
		res.Status = StatusSolved
	case errors.Is(err, search.ErrNoSolution):
		res.Status = StatusNoSolution
	case errors.Is(err, solver.ErrBudgetExceeded):
		res.Status = StatusBudget
	case errors.Is(err, context.DeadlineExceeded):
		res.Status = StatusTimeout
	case errors.Is(err, context.Canceled):
		res.Status = StatusCancelled
	default:
		res.Status = StatusError
	}
	return res
}

// Compare solves one state with several strategies in parallel.
func Compare(ctx context.Context, state string, codes []string, cfg Config, opts ...Option) (*Summary, error) {
	cfg.Strategies = codes
	cfg.Puzzles = []Puzzle{{Name: "input", State: state}}
	cfg.ApplyDefaults()
	return NewRunner(&cfg, opts...).Run(ctx)
}

// WriteTable prints one row per result.
func (s *Summary) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PUZZLE\tSTRATEGY\tSTATUS\tCOST\tEXPANDED\tGENERATED\tELAPSED\tPLAN")
	for _, res := range s.Results {
		cost, expanded, generated, elapsed, plan := "-", "-", "-", "-", "-"
		if o := res.Outcome; o != nil {
			expanded = fmt.Sprint(o.Expanded)
			generated = fmt.Sprint(o.Generated)
			elapsed = o.Elapsed.Round(time.Microsecond).String()
			if o.Solved {
				cost = fmt.Sprint(o.Cost)
				plan = strings.Join(o.Plan, solver.ActionSeparator)
			}
		}
		if res.Status == StatusError && res.Err != nil {
			plan = res.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			res.Puzzle, res.Code, res.Status, cost, expanded, generated, elapsed, plan)
	}
	fmt.Fprintf(tw, "\nrun %s: %d solved, %d unsolved, %d failed in %s\n",
		s.RunID, s.Solved, s.Unsolved, s.Failed, s.Elapsed.Round(time.Millisecond))
	return tw.Flush()
}
