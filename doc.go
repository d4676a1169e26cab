// Package wavefront plans robot paths on occupancy-grid maps.
//
// 🚀 What is wavefront?
//
//	A small planning stack for a robot that drives on a square map:
//		• Grid graph: a side×side occupancy grid with 4-connected neighbor slots
//		• Dilation: obstacles inflated by a Chebyshev radius, undone by Reset
//		• Wavefront: breadth-first distance labels from the goal, stopping at the start
//		• Waypoints: a greedy descent of the labels, keeping only the corners
//		• Planner: the whole pipeline between points in meters
//
// ✨ Around the core
//
//   - mapio/          map.txt in, map-out.txt, plan-out.txt and YAML plans out
//   - render/         terminal view of labels, obstacles and the path (tcell)
//   - server/         POST /plan, GET /map, a WebSocket label stream, /metrics
//   - config/         TOML configuration
//   - logging/        zap logger setup
//   - cmd/wavefront   plan, view, serve and inspect subcommands
//
// Under the hood, the core is four packages, each depending only on the
// ones above it:
//
//	gridgraph/  Cell and GridGraph, dilation, free-space components
//	wavefront/  Propagate and its hooks
//	waypoint/   Extract, Hops, Cells
//	planner/    Frame, Planner, Plan
//
// Quick example:
//
//	p, err := planner.New(occupancy, 32)
//	if err != nil {
//		log.Fatal(err)
//	}
//	wps, err := p.Plan(planner.Point{X: -7.5, Y: -7.5}, planner.Point{X: 6, Y: 5}, true)
//	if errors.Is(err, planner.ErrNoPath) {
//		wps, err = p.Plan(planner.Point{X: -7.5, Y: -7.5}, planner.Point{X: 6, Y: 5}, false)
//	}
//
// Planners are not safe for concurrent use; the server serializes calls.
package wavefront
