// Package puzzle implements the water-sort bottle puzzle as a
// search.Problem.
package puzzle

import (
	"fmt"

	"github.com/katalvlaran/watersort/search"
)

// StepCost is the path cost of one pour.
const StepCost = 1

// Option configures a Problem.
type Option func(*Problem)

// WithHeuristic sets the heuristic stored on every successor node.
func WithHeuristic(h Heuristic) Option {
	return func(p *Problem) {
		if h == nil {
			p.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		p.heuristic = h
	}
}

// Problem is the water-sort search problem rooted at one initial state.
type Problem struct {
	initial   State
	heuristic Heuristic
	err       error
}

var _ search.Problem[State] = (*Problem)(nil)

// New validates initial and returns a Problem. The default heuristic is
// HeuristicZero.
func New(initial State, opts ...Option) (*Problem, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	p := &Problem{initial: initial, heuristic: HeuristicZero}
	for _, opt := range opts {
		opt(p)
	}
	if p.err != nil {
		return nil, p.err
	}
	return p, nil
}

// FromEncoding parses encoding and returns a Problem for it.
func FromEncoding(encoding string, opts ...Option) (*Problem, error) {
	s, err := Parse(encoding)
	if err != nil {
		return nil, err
	}
	return New(s, opts...)
}

// InitialState returns the state the Problem was built with.
func (p *Problem) InitialState() State { return p.initial }

// IsGoal reports whether every bottle holds a single color or nothing.
func (p *Problem) IsGoal(s State) bool { return s.Solved() }

// Heuristic returns the configured estimate for s.
func (p *Problem) Heuristic(s State) int { return p.heuristic(s) }

// Expand returns one successor per legal pour, iterating source bottles in
// the outer loop and targets in the inner loop. A legal pour into a full
// bottle moves nothing and yields no successor.
func (p *Problem) Expand(n search.Node[State]) []search.Node[State] {
	s := n.State
	out := make([]search.Node[State], 0, len(s))
	for i := range s {
		if s[i].IsEmpty() {
			continue
		}
		for j := range s {
			if i == j || !CanPour(s[i], s[j]) {
				continue
			}
			from, to, moved := Pour(s[i], s[j])
			if moved == 0 {
				continue
			}
			next := make(State, len(s))
			copy(next, s)
			next[i], next[j] = from, to
			out = append(out, n.Child(next, ActionLabel(i, j), StepCost, p.heuristic(next)))
		}
	}
	return out
}
