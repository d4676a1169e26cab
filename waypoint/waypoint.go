package waypoint

import (
	"errors"
	"fmt"

	"github.com/kenny-designs/wavefront/gridgraph"
	"github.com/kenny-designs/wavefront/wavefront"
)

// ErrNotLabeled is returned when the start cell carries no wavefront label.
var ErrNotLabeled = errors.New("waypoint: start cell has no wavefront label")

// Extract walks the distance field of g from start to goal and returns the
// corner cells followed by the goal, as flat indices.
//
// g must have been labeled by wavefront.Propagate with the same goal and
// start. start == goal yields [goal]. A cell with no lower neighbor, or a
// walk longer than the grid, is reported as wavefront.ErrInternalInvariant.
//
// Complexity: O(d) for a start at distance d.
func Extract(g *gridgraph.GridGraph, start, goal int) ([]int, error) {
	if g == nil {
		return nil, wavefront.ErrGraphNil
	}
	if !g.Contains(start) || !g.Contains(goal) {
		return nil, fmt.Errorf("%w: start %d, goal %d", gridgraph.ErrIndexOutOfRange, start, goal)
	}
	if !g.Cell(start).Labeled() {
		x, y := g.Coordinate(start)
		return nil, fmt.Errorf("%w: (%d,%d)", ErrNotLabeled, x, y)
	}

	var out []int
	cur := start
	heading := gridgraph.Direction(-1)
	for steps := 0; g.Cell(cur).Distance != 0; steps++ {
		if steps >= g.Len() {
			return nil, fmt.Errorf("%w: backtrack exceeded %d steps", wavefront.ErrInternalInvariant, g.Len())
		}
		next, dir, ok := descend(g, cur)
		if !ok {
			x, y := g.Coordinate(cur)
			return nil, fmt.Errorf("%w: no neighbor of (%d,%d) at distance %d",
				wavefront.ErrInternalInvariant, x, y, g.Cell(cur).Distance-1)
		}
		if heading >= 0 && dir != heading {
			out = append(out, cur)
		}
		heading = dir
		g.Cell(cur).Distance = gridgraph.Consumed
		cur = next
	}
	if cur != goal {
		x, y := g.Coordinate(cur)
		return nil, fmt.Errorf("%w: backtrack ended at (%d,%d), not the goal",
			wavefront.ErrInternalInvariant, x, y)
	}

	return append(out, goal), nil
}

// descend returns the first neighbor of idx, in slot order, labeled one
// less than idx.
func descend(g *gridgraph.GridGraph, idx int) (int, gridgraph.Direction, bool) {
	want := g.Cell(idx).Distance - 1
	for _, d := range gridgraph.Directions {
		n, ok := g.Neighbor(idx, d)
		if ok && g.Cell(n).Distance == want {
			return n, d, true
		}
	}
	return 0, 0, false
}

// Hops returns the number of 4-connected steps along start→wps[0]→…→wps[n-1].
func Hops(g *gridgraph.GridGraph, start int, wps []int) int {
	total := 0
	px, py := g.Coordinate(start)
	for _, w := range wps {
		x, y := g.Coordinate(w)
		total += abs(x-px) + abs(y-py)
		px, py = x, y
	}
	return total
}

// Cells expands a waypoint list back into every cell visited from start to
// the goal, start included.
func Cells(g *gridgraph.GridGraph, start int, wps []int) []int {
	out := []int{start}
	x, y := g.Coordinate(start)
	for _, w := range wps {
		wx, wy := g.Coordinate(w)
		for x != wx || y != wy {
			x += sign(wx - x)
			y += sign(wy - y)
			out = append(out, g.Index(x, y))
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
