// Package solver defines strategy codes, options and the outcome type of
// a water-sort solve.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/watersort/puzzle"
	"github.com/katalvlaran/watersort/render"
	"github.com/katalvlaran/watersort/search"
)

// Results returned by Solve in place of a plan.
const (
	NoSolution      = "NOSOLUTION"
	InvalidStrategy = "Invalid strategy"
	InvalidState    = "Invalid state"
)

// Separators of the Solve result.
const (
	ActionSeparator = ","
	FieldSeparator  = ";"
)

var (
	// ErrInvalidStrategy is returned for an unknown strategy code.
	ErrInvalidStrategy = errors.New("solver: invalid strategy")
	// ErrBudgetExceeded is returned when WithMaxExpansions stops a run.
	ErrBudgetExceeded = errors.New("solver: expansion budget exceeded")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// codes maps wire strategy codes to engine strategies. AS2 names a second
// A* heuristic that was never defined; it runs exactly like AS1.
var codes = map[string]search.Strategy{
	"BF":  search.BreadthFirst,
	"DF":  search.DepthFirst,
	"UC":  search.UniformCost,
	"GR1": search.Greedy,
	"AS1": search.AStar,
	"AS2": search.AStar,
}

// Codes lists the accepted strategy codes.
func Codes() []string {
	return []string{"BF", "DF", "UC", "GR1", "AS1", "AS2"}
}

// ParseStrategy maps a strategy code to an engine strategy.
func ParseStrategy(code string) (search.Strategy, error) {
	s, ok := codes[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidStrategy, code, strings.Join(Codes(), ", "))
	}
	return s, nil
}

// Options holds the configuration of a Run.
type Options struct {
	Ctx           context.Context
	Logger        *zap.Logger
	Visualize     io.Writer
	RenderOptions []render.Option
	Heuristic     puzzle.Heuristic
	Deduplicate   bool
	MaxExpansions int

	err error
}

// Option configures Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns background context, a no-op logger, zero
// heuristic, no visualization, no de-duplication and no budget.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    zap.NewNop(),
		Heuristic: puzzle.HeuristicZero,
	}
}

// WithContext sets the context used to cancel the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithVisualize writes the solution steps to w after a successful run.
func WithVisualize(w io.Writer, opts ...render.Option) Option {
	return func(o *Options) {
		o.Visualize = w
		o.RenderOptions = opts
	}
}

// WithHeuristic sets the heuristic used by GR1/AS1/AS2.
func WithHeuristic(h puzzle.Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithDeduplication runs graph search instead of tree search.
func WithDeduplication() Option {
	return func(o *Options) { o.Deduplicate = true }
}

// WithMaxExpansions aborts the run with ErrBudgetExceeded after n node
// selections. n == 0 means unbounded; n < 0 is invalid.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Outcome describes one finished run. Plan, Cost and Steps are only
// meaningful when Solved is true.
type Outcome struct {
	Code        string
	Strategy    search.Strategy
	Solved      bool
	Plan        []string
	Cost        int
	Expanded    int
	Generated   int
	MaxFrontier int
	Steps       []render.Step
	Elapsed     time.Duration
}

// String returns "plan;cost;expanded" for a solved run and NoSolution otherwise.
func (o *Outcome) String() string {
	if !o.Solved {
		return NoSolution
	}
	return strings.Join(o.Plan, ActionSeparator) + FieldSeparator +
		strconv.Itoa(o.Cost) + FieldSeparator + strconv.Itoa(o.Expanded)
}
