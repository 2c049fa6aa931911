package puzzle

import (
	"fmt"
	"sort"
)

// Heuristic estimates the remaining pours from a state. None of these is
// claimed admissible.
type Heuristic func(s State) int

// HeuristicZero always returns 0; Greedy and AStar then order like
// breadth-first search on unit costs.
func HeuristicZero(State) int { return 0 }

// HeuristicMixedBottles counts bottles that are not uniform.
func HeuristicMixedBottles(s State) int {
	n := 0
	for _, b := range s {
		if !b.Uniform() {
			n++
		}
	}
	return n
}

// HeuristicColorBreaks counts adjacent liquid layers of different color
// across all bottles.
func HeuristicColorBreaks(s State) int {
	n := 0
	for _, b := range s {
		for i := 1; i < len(b.liquid); i++ {
			if b.liquid[i] != b.liquid[i-1] {
				n++
			}
		}
	}
	return n
}

var heuristics = map[string]Heuristic{
	"zero":   HeuristicZero,
	"mixed":  HeuristicMixedBottles,
	"breaks": HeuristicColorBreaks,
}

// HeuristicByName returns a registered heuristic: "zero", "mixed" or "breaks".
func HeuristicByName(name string) (Heuristic, error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown heuristic %q (known: %v)", ErrOptionViolation, name, HeuristicNames())
	}
	return h, nil
}

// HeuristicNames lists registered heuristic names in sorted order.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for k := range heuristics {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
