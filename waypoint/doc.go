// Package waypoint turns a wavefront distance field into a start→goal list of
// corner cells.
//
// Extract walks from the start cell toward the goal, each step moving to the
// first neighbor (slot order Up, Right, Down, Left) whose label is exactly
// one less than the current cell's. This greedy first match is the
// tie-break between equally short paths, so output is reproducible for a
// given grid.
//
// Straight runs are collapsed: a cell is emitted only where the heading
// changes, and the goal is always emitted last. The walk marks each cell it
// leaves as gridgraph.Consumed so no cell is claimed twice.
//
// Hops recovers the hop count of a waypoint list; a 4-connected path between
// consecutive corners is a straight line, so the count is a sum of
// Manhattan distances.
package waypoint
