package search

import "strings"

// NodeID addresses a node inside a Tree.
type NodeID int

// NoParent is the parent index of a root node.
const NoParent NodeID = -1

// Node is an immutable record of a state reached during search.
//
// Invariants:
//   - root: Parent == NoParent, Action == "", PathCost == Depth == 0.
//   - child c of p: c.PathCost == p.PathCost+stepCost, c.Depth == p.Depth+1.
type Node[S any] struct {
	ID            NodeID
	State         S
	Parent        NodeID
	Action        string
	PathCost      int
	Depth         int
	HeuristicCost int
}

// TotalCost returns PathCost + HeuristicCost, the A* priority.
func (n Node[S]) TotalCost() int {
	return n.PathCost + n.HeuristicCost
}

// IsRoot reports whether n has no parent.
func (n Node[S]) IsRoot() bool {
	return n.Parent == NoParent
}

// Child builds a successor of n reached by action at the given step cost.
// The ID is assigned when the child is added to a Tree.
func (n Node[S]) Child(state S, action string, stepCost, heuristic int) Node[S] {
	return Node[S]{
		ID:            NoParent,
		State:         state,
		Parent:        n.ID,
		Action:        action,
		PathCost:      n.PathCost + stepCost,
		Depth:         n.Depth + 1,
		HeuristicCost: heuristic,
	}
}

// Tree is an arena of nodes. Parents are stored as indices, so the whole
// search graph lives in one slice and is released with it.
type Tree[S any] struct {
	nodes []Node[S]
}

// NewTree returns an empty tree with room for capHint nodes.
func NewTree[S any](capHint int) *Tree[S] {
	if capHint < 0 {
		capHint = 0
	}
	return &Tree[S]{nodes: make([]Node[S], 0, capHint)}
}

// Root inserts a root node for state and returns its ID.
func (t *Tree[S]) Root(state S) NodeID {
	return t.add(Node[S]{State: state, Parent: NoParent})
}

// Add inserts n and returns its assigned ID. The parent must already be
// in the tree; a root must be inserted through Root.
func (t *Tree[S]) Add(n Node[S]) NodeID {
	if n.Parent < 0 || int(n.Parent) >= len(t.nodes) {
		panic("search: Tree.Add with parent outside the tree")
	}
	return t.add(n)
}

func (t *Tree[S]) add(n Node[S]) NodeID {
	n.ID = NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return n.ID
}

// Node returns the node stored under id.
func (t *Tree[S]) Node(id NodeID) Node[S] {
	return t.nodes[id]
}

// Len returns the number of nodes in the tree.
func (t *Tree[S]) Len() int {
	return len(t.nodes)
}

// Path returns the nodes from the root to id, inclusive.
func (t *Tree[S]) Path(id NodeID) []Node[S] {
	path := make([]Node[S], 0, t.nodes[id].Depth+1)
	for cur := id; cur != NoParent; cur = t.nodes[cur].Parent {
		path = append(path, t.nodes[cur])
	}
	// reverse to get root → id
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Actions returns the action labels from the root to id. The root carries
// no action, so the result is empty for a root.
func (t *Tree[S]) Actions(id NodeID) []string {
	actions := make([]string, 0, t.nodes[id].Depth)
	for cur := id; t.nodes[cur].Parent != NoParent; cur = t.nodes[cur].Parent {
		actions = append(actions, t.nodes[cur].Action)
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}

// SolutionPath joins Actions(id) with sep.
func (t *Tree[S]) SolutionPath(id NodeID, sep string) string {
	return strings.Join(t.Actions(id), sep)
}
