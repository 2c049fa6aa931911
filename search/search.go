package search

import (
	"context"
	"fmt"
)

// walker encapsulates mutable state of one search run.
type walker[S any] struct {
	problem  Problem[S]
	opts     Options[S]
	ctx      context.Context
	frontier frontier[S]
	expanded map[string]struct{} // nil unless de-duplication is on
	res      *Result[S]
}

// Search runs the general search loop on p using strategy s.
//
// It returns the Result and nil when a goal is reached. When the frontier
// empties first it returns the Result and ErrNoSolution. Other errors:
// ErrNilProblem, ErrUnknownStrategy, ErrOptionViolation, a wrapped OnSelect
// error, or the context error on cancellation. Panics raised by p propagate.
func Search[S any](p Problem[S], s Strategy, opts ...Option[S]) (*Result[S], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	f, err := newFrontier[S](s)
	if err != nil {
		return nil, err
	}

	w := &walker[S]{
		problem:  p,
		opts:     o,
		ctx:      o.Ctx,
		frontier: f,
		res: &Result[S]{
			Tree: NewTree[S](64),
			Goal: NoParent,
		},
	}
	if o.Fingerprint != nil {
		w.expanded = make(map[string]struct{})
	}

	// Seed frontier with the root
	root := w.res.Tree.Root(p.InitialState())
	w.frontier.push(w.res.Tree.Node(root))
	w.res.MaxFrontier = 1

	return w.res, w.loop()
}

// loop selects and expands nodes until a goal, exhaustion, error or cancellation.
func (w *walker[S]) loop() error {
	for w.frontier.len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		node := w.res.Tree.Node(w.frontier.pop())
		if err := w.opts.OnSelect(node); err != nil {
			return fmt.Errorf("search: OnSelect error at node %d: %w", node.ID, err)
		}

		if w.problem.IsGoal(node.State) {
			w.res.Goal = node.ID
			return nil
		}

		if w.seen(node) {
			continue
		}
		w.expand(node)
	}

	return ErrNoSolution
}

// seen reports whether node's state was already expanded, marking it
// otherwise. Always false without de-duplication.
func (w *walker[S]) seen(node Node[S]) bool {
	if w.expanded == nil {
		return false
	}
	key := w.opts.Fingerprint(node.State)
	if _, ok := w.expanded[key]; ok {
		return true
	}
	w.expanded[key] = struct{}{}
	return false
}

// expand asks the problem for successors, inserts them into the tree and
// pushes them onto the frontier in the order returned.
func (w *walker[S]) expand(node Node[S]) {
	children := w.problem.Expand(node)
	w.res.Expanded++
	for _, c := range children {
		id := w.res.Tree.Add(c)
		child := w.res.Tree.Node(id)
		w.frontier.push(child)
		w.res.Generated++
		w.opts.OnGenerate(child)
	}
	if n := w.frontier.len(); n > w.res.MaxFrontier {
		w.res.MaxFrontier = n
	}
}
