// Package gridgraph treats a square occupancy grid as a 4-connected graph,
// the substrate for wavefront planning.
//
// What:
//
//   - GridGraph owns Side×Side cells in row-major order (an arena addressed by
//     flat index); each Cell carries occupancy, dilation, BFS bookkeeping and
//     four fixed neighbor slots (Up, Right, Down, Left).
//   - Dilate inflates obstacles by a Chebyshev radius so a point-robot plan
//     stays clear of walls for a robot with a physical footprint.
//   - Reset clears search state and undoes dilation, leaving the original
//     obstacles intact. Dilate followed by Reset restores the occupancy
//     snapshot exactly.
//   - FreeComponents lists connected regions of free cells.
//
// Why:
//
//   - Neighbor slots are computed once from index arithmetic; a boundary cell
//     gets NoNeighbor instead of a wrapped index, so no edge ever crosses a
//     grid border.
//   - Storing neighbors as indices keeps the graph free of pointer cycles and
//     keeps all mutation on one owned slice.
//
// Complexity:
//
//   - New:            O(N) time and memory (N = Side²).
//   - Dilate(r):      O(N·r²).
//   - Reset:          O(N).
//   - FreeComponents: O(N).
//
// Concurrency:
//
//	A GridGraph is not safe for concurrent use. Plans mutate Visited and
//	Distance in place, so callers serialize plan calls or Clone per request.
//
// Errors:
//
//   - ErrInvalidGrid: side < 1, buffer length ≠ side², or a cell value that
//     is neither 0 nor 1.
package gridgraph
