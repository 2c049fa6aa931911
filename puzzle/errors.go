package puzzle

import "errors"

var (
	// ErrMalformedState is the parent of every encoding validation error.
	ErrMalformedState = errors.New("puzzle: malformed state")
	// ErrEmptyEncoding indicates the encoding has no bottles at all.
	ErrEmptyEncoding = errors.New("puzzle: encoding is empty")
	// ErrEmptyBottle indicates a bottle with zero capacity.
	ErrEmptyBottle = errors.New("puzzle: bottle has no layers")
	// ErrCapacityMismatch indicates bottles of differing capacity.
	ErrCapacityMismatch = errors.New("puzzle: all bottles must have the same capacity")
	// ErrEmptyGap indicates an empty layer above a colored one.
	ErrEmptyGap = errors.New("puzzle: empty layer above colored layer")
	// ErrInvalidColor indicates a layer byte outside printable ASCII.
	ErrInvalidColor = errors.New("puzzle: color must be a printable ASCII character")
	// ErrBadAction indicates an action label that is not pour_<from>_<to>.
	ErrBadAction = errors.New("puzzle: invalid action")
	// ErrIllegalPour indicates a pour that CanPour rejects.
	ErrIllegalPour = errors.New("puzzle: illegal pour")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("puzzle: invalid option supplied")
)
