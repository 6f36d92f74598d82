package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports configuration that cannot produce a usable grid
	// or tick rate. It is returned before any simulation loop starts.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrOutOfBounds reports a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// OutOfBoundsError carries the offending coordinate and the grid extent.
type OutOfBoundsError struct {
	X, Y int
	Size Size
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate (%d,%d) outside %dx%d grid", e.X, e.Y, e.Size.W, e.Size.H)
}

// Is lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }
