// Package wavefront labels a gridgraph.GridGraph with breadth-first hop
// distances from a goal cell until the start cell is reached.
//
// What
//
//   - Propagate seeds the goal with distance 0 and expands one ring at a
//     time through free cells, writing Cell.Distance and Cell.Visited in
//     place. It stops as soon as the start cell is labeled.
//   - Neighbors are scanned in the fixed slot order Up, Right, Down, Left.
//     Together with the FIFO queue this makes the labeling, and every path
//     extracted from it, bit-for-bit reproducible.
//   - Functional hooks observe the search:
//   - OnEnqueue (a cell was labeled and queued)
//   - OnDequeue (a cell is about to be expanded)
//
// Why
//
//   - On an unweighted 4-connected grid BFS distance is the exact hop count,
//     so the label at the start equals its shortest-path length to the goal.
//   - Searching from the goal leaves a descending distance field that the
//     waypoint package can walk greedily from the start.
//
// Determinism
//
//	Slot order and FIFO order are both fixed; two runs over the same grid
//	produce identical labels.
//
// Complexity (N = Side²)
//
//   - Time:   O(N)   (each cell labeled and dequeued at most once)
//   - Memory: O(N)   (queue preallocated to N)
//
// Usage
//
//	gg.Reset()
//	res, err := wavefront.Propagate(gg, goal, start)
//	if err != nil {
//	    // one of ErrGraphNil, gridgraph.ErrIndexOutOfRange,
//	    // ErrUnreachableGoal, ErrNoPath, ErrInternalInvariant
//	}
//	fmt.Println(res.Distance) // hops from start to goal
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrUnreachableGoal     if the goal cell is occupied; no cell is touched.
//   - ErrNoPath              if the queue drains before the start is labeled.
//   - ErrInternalInvariant   if more cells are labeled than the grid holds.
//
// The caller must Reset the graph before each call; Propagate does not
// clear labels left by a previous search.
package wavefront
