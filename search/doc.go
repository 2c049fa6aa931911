// Package search provides a generic tree search engine with pluggable
// queuing strategies, returning the goal node, its reconstructed plan, and
// run statistics.
//
// What
//
//   - Problem[S]: InitialState, IsGoal and Expand supplied by the caller.
//   - Strategy: a closed set of queuing disciplines:
//   - BreadthFirst (FIFO), DepthFirst (LIFO)
//   - UniformCost (min PathCost), Greedy (min HeuristicCost)
//   - AStar (min PathCost + HeuristicCost)
//   - Tree[S]: an arena of immutable Nodes; parents are indices, so path
//     reconstruction walks a slice rather than a pointer chain.
//   - Result[S]: the tree, the goal ID, and Expanded/Generated/MaxFrontier counts.
//
// Loop
//
//	frontier ← {root(InitialState)}
//	while frontier ≠ ∅:
//	    n ← strategy.pop(frontier)
//	    if IsGoal(n.State): return n
//	    frontier ← frontier ∪ Expand(n)
//	return ErrNoSolution
//
// Determinism
//
//	Priority strategies keep a persistent binary heap keyed by
//	(priority, insertion sequence), so equal-priority nodes leave in the
//	order Expand produced them. With a zero heuristic and unit step costs,
//	UniformCost, Greedy and AStar select in exactly the BreadthFirst order.
//
// Repeated states
//
//	The engine performs no cycle detection by default: a state reached
//	twice is expanded twice. WithDeduplication switches to graph search by
//	fingerprint; a revisited state is still goal-tested but not expanded.
//	There is no depth limit and no built-in timeout; pass a context with a
//	deadline or an OnSelect hook that returns an error to bound a run.
//
// Complexity (b = branching factor, d = solution depth, N = nodes generated)
//
//   - Time:   O(N) for FIFO/LIFO, O(N log N) for priority strategies.
//   - Memory: O(N): every generated node is retained for path reconstruction.
//
// Usage
//
//	res, err := search.Search[MyState](problem, search.BreadthFirst)
//	switch {
//	case errors.Is(err, search.ErrNoSolution):
//	    // exhausted; res.Expanded is still meaningful
//	case err != nil:
//	    // ErrNilProblem, ErrUnknownStrategy, ErrOptionViolation, hook or ctx error
//	default:
//	    fmt.Println(res.Plan(","), res.Node().PathCost, res.Expanded)
//	}
//
// Options
//
//   - WithContext(ctx):         cancellation, checked once per selection.
//   - WithOnSelect(fn):         hook per selected node; an error aborts the run.
//   - WithOnGenerate(fn):       hook per generated successor.
//   - WithDeduplication(key):   explicit graph-search variant.
package search
