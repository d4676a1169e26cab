// Package wavefront propagates breadth-first distance labels from a goal
// cell across the free cells of a grid graph.
package wavefront

import (
	"fmt"

	"github.com/kenny-designs/wavefront/gridgraph"
)

// walker encapsulates mutable propagation state.
type walker struct {
	g       *gridgraph.GridGraph
	opts    Options
	queue   []int
	head    int
	labeled int
	start   int
}

// Propagate labels g from goal outward until start is labeled.
// Returns ErrGraphNil or gridgraph.ErrIndexOutOfRange for invalid input,
// ErrUnreachableGoal if the goal is occupied, ErrNoPath if start cannot be
// reached, and ErrInternalInvariant if the label count exceeds the cell count.
//
// The graph is expected to be freshly Reset. On ErrUnreachableGoal no cell
// is modified.
func Propagate(g *gridgraph.GridGraph, goal, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %d", gridgraph.ErrIndexOutOfRange, goal)
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start %d", gridgraph.ErrIndexOutOfRange, start)
	}
	if g.Cell(goal).Occupied {
		x, y := g.Coordinate(goal)
		return nil, fmt.Errorf("%w: goal (%d,%d)", ErrUnreachableGoal, x, y)
	}

	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]int, 0, g.Len()),
		start: start,
	}
	w.enqueue(goal, 0)
	found := goal == start
	for !found && w.head < len(w.queue) {
		var err error
		if found, err = w.expand(w.dequeue()); err != nil {
			return nil, err
		}
	}
	if !found {
		sx, sy := g.Coordinate(start)
		gx, gy := g.Coordinate(goal)
		if g.Cell(start).Occupied {
			return nil, fmt.Errorf("%w: start (%d,%d) is occupied", ErrNoPath, sx, sy)
		}
		return nil, fmt.Errorf("%w: start (%d,%d) not reached from goal (%d,%d) after %d cells",
			ErrNoPath, sx, sy, gx, gy, w.labeled)
	}

	return &Result{
		Start:    start,
		Goal:     goal,
		Distance: g.Cell(start).Distance,
		Labeled:  w.labeled,
	}, nil
}

// enqueue labels idx with dist, marks it visited, calls OnEnqueue and adds
// it to the queue.
func (w *walker) enqueue(idx, dist int) {
	c := w.g.Cell(idx)
	c.Visited = true
	c.Distance = dist
	w.labeled++
	w.opts.OnEnqueue(idx, dist)
	w.queue = append(w.queue, idx)
}

// dequeue pops the front index and invokes OnDequeue.
func (w *walker) dequeue() int {
	idx := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(idx, w.g.Cell(idx).Distance)
	return idx
}

// expand labels every unvisited free neighbor of idx in slot order and
// reports whether the start cell was among them. Scanning stops at the
// start cell.
func (w *walker) expand(idx int) (bool, error) {
	c := w.g.Cell(idx)
	for _, n := range c.Neighbors {
		if n == gridgraph.NoNeighbor {
			continue
		}
		nc := w.g.Cell(n)
		if nc.Occupied || nc.Visited {
			continue
		}
		if w.labeled >= w.g.Len() {
			return false, fmt.Errorf("%w: %d cells labeled on a %d-cell grid",
				ErrInternalInvariant, w.labeled+1, w.g.Len())
		}
		w.enqueue(n, c.Distance+1)
		if n == w.start {
			return true, nil
		}
	}
	return false, nil
}
