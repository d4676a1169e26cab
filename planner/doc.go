// Package planner composes gridgraph, wavefront and waypoint into a single
// plan call that speaks the robot's physical coordinate frame.
//
// What:
//
//   - Frame maps between physical coordinates and grid cells with a fixed
//     affine transform. The default frame centers the grid on the origin at
//     half-unit resolution: physical = index/2 - side/4 on each axis, so a
//     32×32 map spans [-8, 8) meters.
//   - Planner owns one GridGraph. Plan converts start and goal to cells,
//     resets the graph, optionally dilates obstacles, runs the wavefront from
//     the goal, backtracks from the start and maps the corners back to
//     physical coordinates.
//
// Options:
//
//   - WithDilationRadius(r): obstacle inflation radius used when a plan asks
//     for dilation (default 1, the 8-neighborhood).
//   - WithCellSize(s): physical size of one cell (default 0.5).
//   - WithFlipY(): row 0 is the top of the map (+Y), as in the robot's
//     original map files.
//   - WithSearchOptions(...): hooks passed through to wavefront.Propagate.
//
// Errors:
//
//   - ErrInvalidGrid:       occupancy buffer is not side².
//   - ErrInvalidOption:     a non-positive cell size or negative radius.
//   - ErrOutOfBounds:       start or goal outside the frame.
//   - ErrUnreachableGoal:   goal cell occupied (possibly by dilation).
//   - ErrNoPath:            start and goal not connected; retrying without
//     dilation may succeed.
//   - ErrInternalInvariant: a search bound was exceeded (a bug).
//
// A Planner is not safe for concurrent use; each plan mutates the grid.
package planner
