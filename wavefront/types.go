// Package wavefront provides tunable options and error definitions
// for wavefront propagation over a gridgraph.GridGraph.
package wavefront

import (
	"errors"
)

// Sentinel errors for wavefront propagation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("wavefront: graph is nil")

	// ErrUnreachableGoal is returned when the goal cell itself is occupied.
	ErrUnreachableGoal = errors.New("wavefront: goal cell is occupied")

	// ErrNoPath is returned when start and goal are not connected through free cells.
	ErrNoPath = errors.New("wavefront: no path between start and goal")

	// ErrInternalInvariant is returned when a search exceeds the bounds the
	// grid structure guarantees. It indicates a bug, never bad input.
	ErrInternalInvariant = errors.New("wavefront: internal invariant violated")
)

// Option configures propagation via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe propagation.
type Options struct {
	// OnEnqueue is called when a cell receives its label and is queued.
	// Receives the flat cell index and its distance from the goal.
	OnEnqueue func(idx, dist int)

	// OnDequeue is called immediately before a cell's neighbors are scanned.
	OnDequeue func(idx, dist int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
	}
}

// WithOnEnqueue registers a callback to run when a cell is labeled.
// Callbacks from repeated options run in the order given.
func WithOnEnqueue(fn func(idx, dist int)) Option {
	return func(o *Options) {
		o.OnEnqueue = chain(o.OnEnqueue, fn)
	}
}

// WithOnDequeue registers a callback to run when a cell is expanded.
// Callbacks from repeated options run in the order given.
func WithOnDequeue(fn func(idx, dist int)) Option {
	return func(o *Options) {
		o.OnDequeue = chain(o.OnDequeue, fn)
	}
}

// chain runs prev then fn; nil on either side drops out.
func chain(prev, fn func(idx, dist int)) func(idx, dist int) {
	switch {
	case fn == nil:
		return prev
	case prev == nil:
		return fn
	}
	return func(idx, dist int) {
		prev(idx, dist)
		fn(idx, dist)
	}
}

// Result holds the outcome of a successful propagation:
//   - Start, Goal: the flat indices searched between.
//   - Distance: hop count from Start to Goal.
//   - Labeled: number of cells given a label, goal included.
type Result struct {
	Start    int
	Goal     int
	Distance int
	Labeled  int
}
