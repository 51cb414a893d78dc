package maze

import "errors"

var (
	// ErrIndexOutOfBounds is returned by every coordinate-accepting operation
	// when the coordinate lies outside the grid.
	ErrIndexOutOfBounds = errors.New("maze: cell index out of range")
	// ErrInvalidDimensions is returned when a grid is created with a non-positive size.
	ErrInvalidDimensions = errors.New("maze: dimensions must be positive")
	// ErrCancelled is returned when a search is interrupted through its context.
	ErrCancelled = errors.New("maze: search cancelled")
	// ErrMalformedLayout is returned by the text loader for unparsable input.
	ErrMalformedLayout = errors.New("maze: malformed layout")
)
