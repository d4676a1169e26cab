// Package planner plans 4-connected paths on an occupancy grid in physical
// coordinates.
package planner

import (
	"errors"
	"fmt"

	"github.com/kenny-designs/wavefront/gridgraph"
	"github.com/kenny-designs/wavefront/wavefront"
	"github.com/kenny-designs/wavefront/waypoint"
)

// Errors returned by Plan. Those shared with the lower packages are the same
// values, so errors.Is works against either name.
var (
	ErrInvalidGrid       = gridgraph.ErrInvalidGrid
	ErrUnreachableGoal   = wavefront.ErrUnreachableGoal
	ErrNoPath            = wavefront.ErrNoPath
	ErrInternalInvariant = wavefront.ErrInternalInvariant

	// ErrOutOfBounds indicates a start or goal outside the grid extent.
	ErrOutOfBounds = errors.New("planner: coordinate outside grid extent")
	// ErrInvalidOption is returned by New when an Option is invalid.
	ErrInvalidOption = errors.New("planner: invalid option supplied")
)

// DefaultDilationRadius is the obstacle inflation used by dilated plans.
const DefaultDilationRadius = 1

// Option configures a Planner via functional arguments.
// An invalid Option is recorded and surfaced as ErrInvalidOption by New.
type Option func(*Planner)

// WithDilationRadius sets the Chebyshev radius used when a plan dilates.
// Zero makes dilated and plain plans identical; negative is invalid.
func WithDilationRadius(r int) Option {
	return func(p *Planner) {
		if r < 0 {
			p.err = fmt.Errorf("%w: dilation radius cannot be negative (%d)", ErrInvalidOption, r)
			return
		}
		p.radius = r
	}
}

// WithCellSize sets the physical edge length of one cell.
func WithCellSize(s float64) Option {
	return func(p *Planner) {
		if !(s > 0) {
			p.err = fmt.Errorf("%w: cell size must be positive (%v)", ErrInvalidOption, s)
			return
		}
		p.frame.CellSize = s
	}
}

// WithFlipY makes row 0 the +Y edge of the frame.
func WithFlipY() Option {
	return func(p *Planner) {
		p.frame.FlipY = true
	}
}

// WithSearchOptions passes hooks through to every wavefront.Propagate call.
func WithSearchOptions(opts ...wavefront.Option) Option {
	return func(p *Planner) {
		p.search = append(p.search, opts...)
	}
}

// Planner plans paths over one occupancy snapshot.
type Planner struct {
	g      *gridgraph.GridGraph
	frame  Frame
	radius int
	search []wavefront.Option
	err    error
}

// Result is a successful plan.
type Result struct {
	// Waypoints are the physical corners of the path, goal last.
	Waypoints []Point
	// Cells are the flat indices of the same corners.
	Cells []int
	// Start and Goal are the flat indices planned between.
	Start, Goal int
	// Hops is the path length in cell steps.
	Hops int
	// Labeled is how many cells the wavefront touched.
	Labeled int
	// Dilated is how many cells dilation marked for this plan.
	Dilated int
}

// New builds a Planner over a row-major occupancy buffer of length side².
func New(occupancy []bool, side int, opts ...Option) (*Planner, error) {
	g, err := gridgraph.New(occupancy, side)
	if err != nil {
		return nil, err
	}
	return NewFromGraph(g, opts...)
}

// NewFromGraph builds a Planner that takes ownership of g.
func NewFromGraph(g *gridgraph.GridGraph, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, wavefront.ErrGraphNil
	}
	p := &Planner{
		g:      g,
		frame:  DefaultFrame(g.Side),
		radius: DefaultDilationRadius,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.err != nil {
		return nil, p.err
	}
	return p, nil
}

// Clone returns a planner with the same settings over an independent copy
// of the grid, so the copy can plan while p is in use elsewhere.
func (p *Planner) Clone() *Planner {
	return &Planner{
		g:      p.g.Clone(),
		frame:  p.frame,
		radius: p.radius,
		search: append([]wavefront.Option(nil), p.search...),
	}
}

// Grid returns the planner's graph. After a plan it still holds that plan's
// labels and dilation, which renderers display.
func (p *Planner) Grid() *gridgraph.GridGraph {
	return p.g
}

// Frame returns the coordinate frame in use.
func (p *Planner) Frame() Frame {
	return p.frame
}

// DilationRadius returns the radius applied by dilated plans.
func (p *Planner) DilationRadius() int {
	return p.radius
}

// Plan returns the physical waypoints from start to goal, goal last.
// With dilate set, obstacles are inflated by the configured radius first.
func (p *Planner) Plan(start, goal Point, dilate bool) ([]Point, error) {
	res, err := p.PlanDetailed(start, goal, dilate)
	if err != nil {
		return nil, err
	}
	return res.Waypoints, nil
}

// PlanDetailed is Plan with search statistics.
func (p *Planner) PlanDetailed(start, goal Point, dilate bool) (*Result, error) {
	return p.PlanTraced(start, goal, dilate)
}

// PlanTraced is PlanDetailed with extra search hooks for this call only,
// applied after those given by WithSearchOptions.
func (p *Planner) PlanTraced(start, goal Point, dilate bool, trace ...wavefront.Option) (*Result, error) {
	sx, sy, err := p.frame.ToGrid(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	gx, gy, err := p.frame.ToGrid(goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	return p.plan(p.g.Index(sx, sy), p.g.Index(gx, gy), dilate, trace)
}

// PlanIndex plans between flat cell indices.
func (p *Planner) PlanIndex(start, goal int, dilate bool) (*Result, error) {
	return p.plan(start, goal, dilate, nil)
}

func (p *Planner) plan(start, goal int, dilate bool, trace []wavefront.Option) (*Result, error) {
	if !p.g.Contains(start) || !p.g.Contains(goal) {
		return nil, fmt.Errorf("%w: start %d, goal %d on a %d-cell grid",
			ErrOutOfBounds, start, goal, p.g.Len())
	}

	p.g.Reset()
	res := &Result{Start: start, Goal: goal}
	if dilate {
		res.Dilated = p.g.Dilate(p.radius)
	}

	search := p.search
	if len(trace) > 0 {
		search = append(append([]wavefront.Option(nil), p.search...), trace...)
	}
	wf, err := wavefront.Propagate(p.g, goal, start, search...)
	if err != nil {
		return nil, err
	}
	cells, err := waypoint.Extract(p.g, start, goal)
	if err != nil {
		return nil, err
	}

	res.Cells = cells
	res.Labeled = wf.Labeled
	res.Hops = waypoint.Hops(p.g, start, cells)
	res.Waypoints = make([]Point, len(cells))
	for i, c := range cells {
		x, y := p.g.Coordinate(c)
		res.Waypoints[i] = p.frame.ToPhysical(x, y)
	}
	return res, nil
}
