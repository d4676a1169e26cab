package planner

import (
	"fmt"
	"math"
)

// DefaultCellSize is the physical edge length of one grid cell.
const DefaultCellSize = 0.5

// Point is a coordinate in the robot's physical frame.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// String formats p like "(1.5, -2.0)".
func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Frame is the affine map between physical coordinates and grid cells.
// The grid is centered on the origin and spans Side*CellSize on each axis.
type Frame struct {
	Side     int
	CellSize float64
	// FlipY puts row 0 at the top (+Y) edge instead of the bottom.
	FlipY bool
}

// DefaultFrame returns the half-unit frame for a side×side grid.
func DefaultFrame(side int) Frame {
	return Frame{Side: side, CellSize: DefaultCellSize}
}

// half is the distance from the origin to a grid edge.
func (f Frame) half() float64 {
	return float64(f.Side) * f.CellSize / 2
}

// ToPhysical returns the physical coordinate of grid index (x,y):
// index*CellSize - Side*CellSize/2 on each axis, with Y mirrored under FlipY.
// ToGrid(ToPhysical(x, y)) == (x, y) for every in-range index.
func (f Frame) ToPhysical(x, y int) Point {
	h := f.half()
	p := Point{
		X: float64(x)*f.CellSize - h,
		Y: float64(y)*f.CellSize - h,
	}
	if f.FlipY {
		p.Y = h - float64(y)*f.CellSize
	}
	return p
}

// ToGrid returns the cell containing p.
// Returns ErrOutOfBounds if p lies outside the grid extent or is not finite.
func (f Frame) ToGrid(p Point) (x, y int, err error) {
	h := f.half()
	fx := (p.X + h) / f.CellSize
	fy := (p.Y + h) / f.CellSize
	if f.FlipY {
		fy = (h - p.Y) / f.CellSize
	}
	ix, okx := cellIndex(fx, f.Side)
	iy, oky := cellIndex(fy, f.Side)
	if !okx || !oky {
		return 0, 0, fmt.Errorf("%w: %v outside ±%.2f", ErrOutOfBounds, p, h)
	}
	return ix, iy, nil
}

// snap absorbs rounding in v*CellSize/CellSize so cell boundaries map to
// the cell they open.
const snap = 1e-9

// cellIndex floors v to an index and reports whether it is in [0, side).
func cellIndex(v float64, side int) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	i := math.Floor(v + snap)
	if i < 0 || i >= float64(side) {
		return 0, false
	}
	return int(i), true
}
