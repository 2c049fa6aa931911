package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// BottleSeparator joins bottles in the wire encoding.
const BottleSeparator = ";"

// State is an ordered row of bottles of equal capacity.
type State []Bottle

// Parse decodes a wire encoding such as "ab;ba;ee": bottles separated by
// ';', each a run of single-byte layers listed surface first, 'e' marking
// free capacity. Colors are printable ASCII characters other than 'e' and
// space; any other byte, including every byte of a multibyte UTF-8
// character, fails with ErrInvalidColor. Every failure wraps
// ErrMalformedState.
func Parse(encoding string) (State, error) {
	if encoding == "" {
		return nil, fmt.Errorf("%w: %w", ErrMalformedState, ErrEmptyEncoding)
	}
	parts := strings.Split(encoding, BottleSeparator)
	state := make(State, len(parts))
	capacity := len(parts[0])
	for i, part := range parts {
		if len(part) == 0 {
			return nil, fmt.Errorf("%w: bottle %d: %w", ErrMalformedState, i, ErrEmptyBottle)
		}
		if k := strings.IndexFunc(part, invalidColor); k >= 0 {
			return nil, fmt.Errorf("%w: bottle %d at byte %d: %w", ErrMalformedState, i, k, ErrInvalidColor)
		}
		if len(part) != capacity {
			return nil, fmt.Errorf("%w: bottle %d has %d layers, bottle 0 has %d: %w",
				ErrMalformedState, i, len(part), capacity, ErrCapacityMismatch)
		}
		b, err := parseBottle(part)
		if err != nil {
			return nil, fmt.Errorf("%w: bottle %d %q: %w", ErrMalformedState, i, part, err)
		}
		state[i] = b
	}
	return state, nil
}

// invalidColor reports whether r cannot be a layer symbol.
func invalidColor(r rune) bool {
	return r <= ' ' || r > '~'
}

// parseBottle decodes one surface-first bottle.
func parseBottle(s string) (Bottle, error) {
	filled := strings.IndexByte(s, EmptySymbol)
	if filled < 0 {
		filled = len(s)
	}
	for i := filled; i < len(s); i++ {
		if s[i] != EmptySymbol {
			return Bottle{}, fmt.Errorf("%w at layer %d", ErrEmptyGap, i)
		}
	}
	layers := make([]Layer, filled)
	for i := 0; i < filled; i++ {
		layers[i] = Layer(s[i])
	}
	return NewBottle(len(s), layers...), nil
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(encoding string) State {
	s, err := Parse(encoding)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks invariants of a State assembled without Parse.
func (s State) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: %w", ErrMalformedState, ErrEmptyEncoding)
	}
	for i, b := range s {
		if b.Capacity() == 0 {
			return fmt.Errorf("%w: bottle %d: %w", ErrMalformedState, i, ErrEmptyBottle)
		}
		if b.Capacity() != s[0].Capacity() {
			return fmt.Errorf("%w: bottle %d: %w", ErrMalformedState, i, ErrCapacityMismatch)
		}
	}
	return nil
}

// String returns the wire encoding of s.
func (s State) String() string {
	parts := make([]string, len(s))
	for i, b := range s {
		parts[i] = b.String()
	}
	return strings.Join(parts, BottleSeparator)
}

// Solved reports whether every bottle is uniform or empty.
func (s State) Solved() bool {
	for _, b := range s {
		if !b.Uniform() {
			return false
		}
	}
	return true
}

// Pour returns the state after pouring bottle from into bottle to, and the
// number of layers moved. s is left unchanged.
func (s State) Pour(from, to int) (State, int, error) {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return nil, 0, fmt.Errorf("%w: pour_%d_%d on %d bottles", ErrBadAction, from, to, len(s))
	}
	if !CanPour(s[from], s[to]) {
		return nil, 0, fmt.Errorf("%w: pour_%d_%d on %s", ErrIllegalPour, from, to, s)
	}
	next := make(State, len(s))
	copy(next, s)
	var moved int
	next[from], next[to], moved = Pour(s[from], s[to])
	return next, moved, nil
}

// ActionLabel returns the action name of pouring from into to.
func ActionLabel(from, to int) string {
	return "pour_" + strconv.Itoa(from) + "_" + strconv.Itoa(to)
}

// ParseAction decodes an ActionLabel.
func ParseAction(action string) (from, to int, err error) {
	rest, ok := strings.CutPrefix(action, "pour_")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadAction, action)
	}
	a, b, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadAction, action)
	}
	if from, err = strconv.Atoi(a); err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadAction, action, err)
	}
	if to, err = strconv.Atoi(b); err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadAction, action, err)
	}
	return from, to, nil
}

// Replay applies actions to s in order and returns the final state.
func Replay(s State, actions []string) (State, error) {
	cur := s
	for i, a := range actions {
		from, to, err := ParseAction(a)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if cur, _, err = cur.Pour(from, to); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return cur, nil
}
