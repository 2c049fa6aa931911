// Package puzzle models the water-sort puzzle and exposes it to the
// search engine.
//
// Encoding
//
//	"ab;ba;ee" is three bottles of capacity 2. Each bottle lists its layers
//	surface first; 'e' marks free capacity and may only trail the colored
//	layers. Any other printable ASCII character except space is a color
//	identifier; control bytes and non-ASCII input are rejected.
//
// Model
//
//   - Bottle is a fixed-capacity stack stored bottom → surface, so the
//     "no empty layer under a colored one" invariant holds by construction.
//   - CanPour(from, to): from holds liquid, and to is empty or shows the
//     same surface color.
//   - Pour(from, to): moves min(to.Free(), from.Run()) layers of the
//     surface color; layer and empty counts are conserved across the pair.
//   - Solved: every layer of every bottle equals that bottle's surface color
//     or is empty.
//
// Successors
//
//	Problem.Expand walks ordered pairs (i, j), i outer and j inner, i ≠ j,
//	labeling each pour "pour_i_j" with step cost 1. Pours that CanPour
//	allows but that move zero layers (full target) are dropped: they would
//	re-create the parent state and trap depth-first search.
//
// Errors
//
//   - ErrMalformedState wraps ErrEmptyEncoding, ErrEmptyBottle,
//     ErrCapacityMismatch, ErrEmptyGap and ErrInvalidColor from Parse and
//     Validate.
//   - ErrBadAction, ErrIllegalPour from State.Pour, ParseAction and Replay.
//   - ErrOptionViolation for a nil or unknown heuristic.
package puzzle
