// Package mapio reads and writes the files the planner exchanges with the
// rest of the robot software.
//
// Formats:
//
//   - Map: whitespace-separated 0/1 integers, side×side values, first row
//     first. 1 is an obstacle. Extra line breaks are ignored.
//   - Map dump: the same layout written back with waypoint cells as 2, the
//     file a plan follower loads to draw its route.
//   - Label dump: the wavefront distance field, two columns per cell, for
//     debugging.
//   - Plan text: the number of coordinates (twice the waypoint count)
//     followed by x y pairs.
//   - Plan YAML: start, goal, waypoints and hop count as a YAML document.
//
// Errors:
//
//   - ErrMapSize:        the map does not hold exactly side² values, or
//     its length is not a perfect square when the side is inferred.
//   - ErrMismatchedPlan: a plan declares an odd number of coordinates.
//   - ErrShortPlan:      a plan holds fewer coordinates than declared.
package mapio
