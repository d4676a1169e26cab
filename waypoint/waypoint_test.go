package waypoint_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenny-designs/wavefront/gridgraph"
	"github.com/kenny-designs/wavefront/wavefront"
	"github.com/kenny-designs/wavefront/waypoint"
)

// gridFrom parses rows of '#' (occupied) and '.' (free) into a GridGraph.
func gridFrom(t *testing.T, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	side := len(rows)
	occ := make([]bool, 0, side*side)
	for _, r := range rows {
		require.Len(t, r, side)
		for _, ch := range r {
			occ = append(occ, ch == '#')
		}
	}
	gg, err := gridgraph.New(occ, side)
	require.NoError(t, err)
	return gg
}

// route labels gg from goal and extracts the waypoints back from start.
func route(t *testing.T, gg *gridgraph.GridGraph, start, goal int) []int {
	t.Helper()
	_, err := wavefront.Propagate(gg, goal, start)
	require.NoError(t, err)
	wps, err := waypoint.Extract(gg, start, goal)
	require.NoError(t, err)
	return wps
}

// coords converts flat indices to (x,y) pairs for readable assertions.
func coords(gg *gridgraph.GridGraph, idx []int) [][2]int {
	out := make([][2]int, len(idx))
	for i, v := range idx {
		x, y := gg.Coordinate(v)
		out[i] = [2]int{x, y}
	}
	return out
}

// TestExtract_LShape4x4 plans corner to corner on an open 4×4 grid: one
// corner plus the goal, six hops.
func TestExtract_LShape4x4(t *testing.T) {
	gg, err := gridgraph.New(make([]bool, 16), 4)
	require.NoError(t, err)
	start, goal := gg.Index(0, 0), gg.Index(3, 3)

	wps := route(t, gg, start, goal)
	assert.Equal(t, [][2]int{{3, 0}, {3, 3}}, coords(gg, wps))
	assert.Equal(t, 6, waypoint.Hops(gg, start, wps))
}

// TestExtract_CenterObstacle3x3 avoids the occupied middle cell.
func TestExtract_CenterObstacle3x3(t *testing.T) {
	gg := gridFrom(t,
		"...",
		".#.",
		"...",
	)
	start, goal := gg.Index(0, 0), gg.Index(2, 2)

	wps := route(t, gg, start, goal)
	assert.Equal(t, 4, waypoint.Hops(gg, start, wps))
	for _, c := range waypoint.Cells(gg, start, wps) {
		assert.NotEqual(t, 4, c, "path crosses the obstacle")
	}
	assert.Equal(t, [][2]int{{2, 0}, {2, 2}}, coords(gg, wps))
}

// TestExtract_TieBreakPrefersUp starts bottom-left; Up is scanned first so
// the path climbs before turning right.
func TestExtract_TieBreakPrefersUp(t *testing.T) {
	gg, err := gridgraph.New(make([]bool, 16), 4)
	require.NoError(t, err)
	start, goal := gg.Index(0, 3), gg.Index(3, 0)

	wps := route(t, gg, start, goal)
	assert.Equal(t, [][2]int{{0, 0}, {3, 0}}, coords(gg, wps))
}

// TestExtract_StraightLine has no corners, only the goal.
func TestExtract_StraightLine(t *testing.T) {
	gg, err := gridgraph.New(make([]bool, 25), 5)
	require.NoError(t, err)
	start, goal := gg.Index(0, 2), gg.Index(4, 2)

	wps := route(t, gg, start, goal)
	assert.Equal(t, []int{goal}, wps)
	assert.Equal(t, 4, waypoint.Hops(gg, start, wps))
}

func TestExtract_StartIsGoal(t *testing.T) {
	gg, err := gridgraph.New(make([]bool, 9), 3)
	require.NoError(t, err)
	wps := route(t, gg, 4, 4)
	assert.Equal(t, []int{4}, wps)
	assert.Zero(t, waypoint.Hops(gg, 4, wps))
}

// TestExtract_Corridor follows a serpentine corridor and checks every
// emitted cell is a real turn.
//
//	. . . . .
//	# # # # .
//	. . . . .
//	. # # # #
//	. . . . .
func TestExtract_Corridor(t *testing.T) {
	gg := gridFrom(t,
		".....",
		"####.",
		".....",
		".####",
		".....",
	)
	start, goal := gg.Index(0, 0), gg.Index(4, 4)

	wps := route(t, gg, start, goal)
	assert.Equal(t, [][2]int{{4, 0}, {4, 2}, {0, 2}, {0, 4}, {4, 4}}, coords(gg, wps))
	assert.Equal(t, 16, waypoint.Hops(gg, start, wps))
}

// TestExtract_ConsumesCells marks every walked cell except the goal.
func TestExtract_ConsumesCells(t *testing.T) {
	gg, err := gridgraph.New(make([]bool, 16), 4)
	require.NoError(t, err)
	start, goal := gg.Index(0, 0), gg.Index(3, 3)

	wps := route(t, gg, start, goal)
	cells := waypoint.Cells(gg, start, wps)
	require.Len(t, cells, 7)
	for _, c := range cells[:len(cells)-1] {
		assert.Equal(t, gridgraph.Consumed, gg.Cell(c).Distance, "cell %d", c)
	}
	assert.Equal(t, 0, gg.Cell(goal).Distance)
}

func TestExtract_Errors(t *testing.T) {
	_, err := waypoint.Extract(nil, 0, 0)
	assert.ErrorIs(t, err, wavefront.ErrGraphNil)

	gg, err := gridgraph.New(make([]bool, 9), 3)
	require.NoError(t, err)

	_, err = waypoint.Extract(gg, 0, 9)
	assert.ErrorIs(t, err, gridgraph.ErrIndexOutOfRange)

	_, err = waypoint.Extract(gg, 0, 8)
	assert.ErrorIs(t, err, waypoint.ErrNotLabeled)

	// a label with no descending neighbor cannot come from Propagate
	gg.Cell(0).Distance = 3
	_, err = waypoint.Extract(gg, 0, 8)
	assert.ErrorIs(t, err, wavefront.ErrInternalInvariant)
}

// TestExtract_OpenGridIsManhattan checks on open grids of several sizes that
// every plan is as long as the Manhattan distance and at most one corner.
func TestExtract_OpenGridIsManhattan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		side := 1 + rng.Intn(9)
		gg, err := gridgraph.New(make([]bool, side*side), side)
		require.NoError(t, err)
		start, goal := rng.Intn(side*side), rng.Intn(side*side)

		wps := route(t, gg, start, goal)
		sx, sy := gg.Coordinate(start)
		gx, gy := gg.Coordinate(goal)
		manhattan := abs(sx-gx) + abs(sy-gy)
		require.Equal(t, manhattan, waypoint.Hops(gg, start, wps), "trial %d", trial)
		require.LessOrEqual(t, len(wps), 2, "trial %d", trial)
		require.Equal(t, goal, wps[len(wps)-1])
	}
}

// TestCells_StepsAreAdjacent expands waypoints into unit steps.
func TestCells_StepsAreAdjacent(t *testing.T) {
	gg := gridFrom(t,
		".....",
		"####.",
		".....",
		".####",
		".....",
	)
	start, goal := gg.Index(0, 0), gg.Index(4, 4)
	wps := route(t, gg, start, goal)
	cells := waypoint.Cells(gg, start, wps)
	require.Len(t, cells, 17)
	for i := 1; i < len(cells); i++ {
		ax, ay := gg.Coordinate(cells[i-1])
		bx, by := gg.Coordinate(cells[i])
		assert.Equal(t, 1, abs(ax-bx)+abs(ay-by))
		assert.False(t, gg.Cell(cells[i]).Occupied)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
