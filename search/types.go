package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to Search.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrUnknownStrategy is returned for a Strategy value outside the closed set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNoSolution is returned when the frontier is exhausted without
	// reaching a goal. The accompanying Result still carries statistics.
	ErrNoSolution = errors.New("search: no solution")
)

// Option configures Search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option[S any] func(*Options[S])

// Options holds parameters and callbacks to customize a search run.
type Options[S any] struct {
	// Ctx allows cancellation and deadlines. The engine itself has no timeout.
	Ctx context.Context

	// OnSelect is called for each node removed from the frontier, before the
	// goal test. A non-nil error aborts the run and is returned wrapped.
	OnSelect func(n Node[S]) error

	// OnGenerate is called for each successor after it is added to the tree.
	OnGenerate func(n Node[S])

	// Fingerprint, when set, enables graph-search de-duplication: a node whose
	// fingerprint was already expanded is goal-tested but never re-expanded.
	Fingerprint func(state S) string

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks
// and de-duplication disabled.
func DefaultOptions[S any]() Options[S] {
	return Options[S]{
		Ctx:        context.Background(),
		OnSelect:   func(Node[S]) error { return nil },
		OnGenerate: func(Node[S]) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S any](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnSelect registers a callback run on every selected node; returning
// an error from it stops the search.
func WithOnSelect[S any](fn func(n Node[S]) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnSelect = fn
		}
	}
}

// WithOnGenerate registers a callback run on every generated successor.
func WithOnGenerate[S any](fn func(n Node[S])) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}

// WithDeduplication turns the tree search into a graph search keyed by
// fingerprint. This changes the completeness and optimality trade-offs of
// DepthFirst, so it is never enabled implicitly.
func WithDeduplication[S any](fingerprint func(state S) string) Option[S] {
	return func(o *Options[S]) {
		if fingerprint == nil {
			o.err = fmt.Errorf("%w: nil fingerprint function", ErrOptionViolation)
			return
		}
		o.Fingerprint = fingerprint
	}
}

// Result holds the outcome of a search run:
//   - Tree: every node generated during the run.
//   - Goal: ID of the goal node, or NoParent when none was reached.
//   - Expanded: number of Problem.Expand calls.
//   - Generated: number of successor nodes created.
//   - MaxFrontier: largest frontier size observed.
type Result[S any] struct {
	Tree        *Tree[S]
	Goal        NodeID
	Expanded    int
	Generated   int
	MaxFrontier int
}

// Found reports whether the run reached a goal.
func (r *Result[S]) Found() bool {
	return r != nil && r.Goal != NoParent
}

// Node returns the goal node. It panics if no goal was found.
func (r *Result[S]) Node() Node[S] {
	if !r.Found() {
		panic("search: Result.Node called without a goal")
	}
	return r.Tree.Node(r.Goal)
}

// Plan returns the goal's actions joined by sep, or "" when no goal was found.
func (r *Result[S]) Plan(sep string) string {
	if !r.Found() {
		return ""
	}
	return r.Tree.SolutionPath(r.Goal, sep)
}
