package gridgraph

import "errors"

var (
	// ErrInvalidGrid indicates an occupancy buffer that cannot form a square grid.
	ErrInvalidGrid = errors.New("gridgraph: occupancy buffer does not describe a square grid")
	// ErrIndexOutOfRange indicates a flat cell index outside [0, Side²).
	ErrIndexOutOfRange = errors.New("gridgraph: cell index out of range")
)
