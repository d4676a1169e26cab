// Package gridgraph defines the cell, direction and grid types
// shared by the wavefront planner packages.
package gridgraph

// Direction names one of the four neighbor slots of a cell.
// The numeric order is the iteration order every search uses, and so it
// fixes tie-breaking between equally short paths.
type Direction int

const (
	// Up is the neighbor at index i-Side.
	Up Direction = iota
	// Right is the neighbor at index i+1.
	Right
	// Down is the neighbor at index i+Side.
	Down
	// Left is the neighbor at index i-1.
	Left
)

// NumDirections is the number of neighbor slots per cell.
const NumDirections = 4

// Directions lists the neighbor slots in iteration order.
var Directions = [NumDirections]Direction{Up, Right, Down, Left}

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "none"
}

// Sentinel values stored in Cell.Neighbors and Cell.Distance.
const (
	// NoNeighbor marks an empty neighbor slot at a grid boundary.
	NoNeighbor = -1
	// Unset is the distance of a cell the wavefront has not labeled.
	Unset = -1
	// Consumed is the distance of a cell already walked by backtracking.
	Consumed = -2
)

// Cell is a single grid position.
//
// Neighbors is fixed at construction; only Occupied, Dilated, Visited and
// Distance change afterwards.
type Cell struct {
	X, Y      int                // column and row within the grid
	Occupied  bool               // impassable
	Dilated   bool               // occupancy added by Dilate, undone by Reset
	Visited   bool               // transient wavefront marker
	Distance  int                // wavefront label, Unset or Consumed
	Neighbors [NumDirections]int // flat indices or NoNeighbor
}

// Labeled reports whether the wavefront assigned c a distance.
func (c *Cell) Labeled() bool {
	return c.Distance >= 0
}

// GridGraph is a square occupancy grid wired as a 4-connected graph.
// Side is fixed for the lifetime of the graph; cells[i] sits at
// (i % Side, i / Side).
type GridGraph struct {
	Side  int
	cells []Cell
}
