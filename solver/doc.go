// Package solver is the entry point for solving an encoded water-sort
// puzzle with a named strategy.
//
//	solver.Solve("ab;ba;ee", "BF", false) // "pour_0_2,pour_1_0;2;3"
//
// Strategy codes: BF (breadth-first), DF (depth-first), UC (uniform-cost),
// GR1 (greedy), AS1 and AS2 (A*; AS2 behaves as AS1).
//
// Solve returns one of:
//
//   - "plan;cost;expanded": comma-joined pour actions, path cost, and the
//     number of nodes expanded.
//   - NoSolution ("NOSOLUTION") when the search exhausts its frontier.
//   - InvalidStrategy for an unknown code.
//   - InvalidState when the encoding fails validation.
//
// A pour into a full bottle moves nothing and is not generated as a
// successor, so such non-moves never reach the frontier and never count
// toward "expanded". A search that treats them as successors reports more
// expansions for the same plan: breadth-first on "ab;ba;ee" would report
// "pour_0_2,pour_1_0;2;4" rather than "pour_0_2,pour_1_0;2;3".
//
// Run is the typed variant: it returns an Outcome with the plan, counters
// and solution steps, and accepts options for logging (zap), cancellation,
// heuristics, graph-search de-duplication, an expansion budget, and
// visualization through package render.
//
// Neither Solve nor Run bounds the search unless asked: depth-first search
// on a puzzle with reversible pours may run until memory is exhausted.
package solver
