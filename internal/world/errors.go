package world

import "errors"

var (
	// ErrConfiguration indicates dimensions or parameters that cannot hold a
	// single minimally sized room.
	ErrConfiguration = errors.New("world: invalid generation configuration")
	// ErrCapacityExceeded indicates a placement loop ran out of attempts.
	ErrCapacityExceeded = errors.New("world: placement attempts exhausted")
	// ErrInvalidLayout indicates a generated layout broke a structural invariant.
	ErrInvalidLayout = errors.New("world: layout failed validation")
)
