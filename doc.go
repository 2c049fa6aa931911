// Package watersort is a small search playground: a generic tree-search
// engine with pluggable queuing strategies, and the water-sort puzzle as the
// problem it solves.
//
// 🚀 What is in here?
//
//	search/  - Node, Tree, Problem and Search: breadth-first, depth-first,
//	           uniform-cost, greedy best-first and A* over any state type
//	puzzle/  - bottles, states, the "ab;ba;ee" encoding, pours, heuristics
//	solver/  - Solve(encoding, code, visualize) and the typed Run API
//	render/  - step-by-step printing of a solution, optionally drawn in color
//	batch/   - YAML-described runs over many puzzles and strategies in parallel
//	cmd/     - the watersort command line tool
//
// ✨ Why?
//
//   - The strategy only decides which frontier node is expanded next; the
//     problem only knows states, goals and successors.
//   - Pure library packages: search and puzzle never log or spawn goroutines.
//   - Hooks (OnSelect, OnGenerate) for tracing, budgets and cancellation.
//
// Quick example:
//
//	solver.Solve("ab;ba;ee", "BF", false) // "pour_0_2,pour_1_0;2;3"
//
// The same state as render draws it, surface on top:
//
//	|a| |b| | |
//	|b| |a| | |
//	+-+ +-+ +-+
//	 0   1   2
//
//	go install github.com/katalvlaran/watersort/cmd/watersort@latest
package watersort
