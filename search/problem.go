package search

// Problem is what a concrete puzzle supplies to the engine.
//
// Expand returns every successor reachable from n.State by one action,
// each built with n.Child so that Parent, PathCost and Depth follow the
// node invariants. It must not mutate n and should be deterministic:
// successor order is the tie-break order for equal-priority frontier nodes.
type Problem[S any] interface {
	InitialState() S
	IsGoal(state S) bool
	Expand(n Node[S]) []Node[S]
}
