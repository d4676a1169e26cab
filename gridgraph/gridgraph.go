// Package gridgraph provides the occupancy grid graph used by the wavefront
// planner. Cells are free or occupied; free cells are connected to their
// orthogonal neighbors.
package gridgraph

import (
	"fmt"
)

// New builds a GridGraph from a row-major occupancy buffer of length side².
// true marks an occupied cell. The buffer is copied, so later changes to it
// do not affect the graph.
// Returns ErrInvalidGrid if side < 1 or the length does not match.
// Algorithmic complexity: O(side²) time and memory.
func New(occupancy []bool, side int) (*GridGraph, error) {
	if side < 1 {
		return nil, fmt.Errorf("%w: side length %d", ErrInvalidGrid, side)
	}
	if len(occupancy) != side*side {
		return nil, fmt.Errorf("%w: got %d cells, want %d×%d=%d",
			ErrInvalidGrid, len(occupancy), side, side, side*side)
	}
	gg := &GridGraph{
		Side:  side,
		cells: make([]Cell, side*side),
	}
	for i := range gg.cells {
		x, y := gg.Coordinate(i)
		gg.cells[i] = Cell{
			X:        x,
			Y:        y,
			Occupied: occupancy[i],
			Distance: Unset,
		}
	}
	gg.connect()

	return gg, nil
}

// FromInts builds a GridGraph from integer cell values, 1 for occupied and
// 0 for free, as they appear in text maps.
// Any other value is rejected with ErrInvalidGrid.
func FromInts(values []int, side int) (*GridGraph, error) {
	occ := make([]bool, len(values))
	for i, v := range values {
		switch v {
		case 0:
		case 1:
			occ[i] = true
		default:
			return nil, fmt.Errorf("%w: cell %d has value %d, want 0 or 1", ErrInvalidGrid, i, v)
		}
	}

	return New(occ, side)
}

// connect fills every cell's neighbor slots. A slot whose index would fall
// off the grid, or wrap onto the previous or next row, is NoNeighbor.
func (gg *GridGraph) connect() {
	sl := gg.Side
	n := len(gg.cells)
	for i := range gg.cells {
		nb := &gg.cells[i].Neighbors
		for _, d := range Directions {
			nb[d] = NoNeighbor
		}
		if i-sl >= 0 {
			nb[Up] = i - sl
		}
		if i%sl != sl-1 {
			nb[Right] = i + 1
		}
		if i+sl < n {
			nb[Down] = i + sl
		}
		if i%sl != 0 {
			nb[Left] = i - 1
		}
	}
}

// Len returns the number of cells, Side².
func (gg *GridGraph) Len() int {
	return len(gg.cells)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Side && y >= 0 && y < gg.Side
}

// Contains reports whether idx is a valid flat cell index.
func (gg *GridGraph) Contains(idx int) bool {
	return idx >= 0 && idx < len(gg.cells)
}

// Index maps (x,y) to a row-major index: y*Side + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Side + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Side, idx / gg.Side
}

// Cell returns the cell at idx. The pointer aliases graph storage and is
// valid until the graph is discarded; callers outside the planner packages
// should treat it as read-only.
// Panics if idx is out of range, like a slice access.
func (gg *GridGraph) Cell(idx int) *Cell {
	return &gg.cells[idx]
}

// Neighbor returns the index in slot d of cell idx and whether it exists.
func (gg *GridGraph) Neighbor(idx int, d Direction) (int, bool) {
	n := gg.cells[idx].Neighbors[d]
	return n, n != NoNeighbor
}

// Occupancy returns a copy of the current occupancy, dilation included.
func (gg *GridGraph) Occupancy() []bool {
	out := make([]bool, len(gg.cells))
	for i := range gg.cells {
		out[i] = gg.cells[i].Occupied
	}
	return out
}

// Labels returns a copy of the current distance field.
func (gg *GridGraph) Labels() []int {
	out := make([]int, len(gg.cells))
	for i := range gg.cells {
		out[i] = gg.cells[i].Distance
	}
	return out
}

// Clone returns an independent copy of the graph, search state included.
func (gg *GridGraph) Clone() *GridGraph {
	cells := make([]Cell, len(gg.cells))
	copy(cells, gg.cells)
	return &GridGraph{Side: gg.Side, cells: cells}
}

// String renders the grid one row per line: '#' occupied, '+' dilated,
// '.' free.
func (gg *GridGraph) String() string {
	b := make([]byte, 0, len(gg.cells)+gg.Side)
	for i := range gg.cells {
		c := &gg.cells[i]
		switch {
		case c.Dilated:
			b = append(b, '+')
		case c.Occupied:
			b = append(b, '#')
		default:
			b = append(b, '.')
		}
		if i%gg.Side == gg.Side-1 {
			b = append(b, '\n')
		}
	}
	return string(b)
}
