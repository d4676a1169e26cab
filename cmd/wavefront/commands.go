package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/kenny-designs/wavefront/config"
	"github.com/kenny-designs/wavefront/gridgraph"
	"github.com/kenny-designs/wavefront/logging"
	"github.com/kenny-designs/wavefront/mapio"
	"github.com/kenny-designs/wavefront/planner"
	"github.com/kenny-designs/wavefront/render"
	"github.com/kenny-designs/wavefront/server"
	"github.com/kenny-designs/wavefront/waypoint"
)

// skipOutput disables an output path given on the command line.
const skipOutput = "-"

// setup parses flags, builds the logger and loads the map.
func setup(name string, args []string, stderr io.Writer) (*config.Config, *zap.Logger, *planner.Planner, error) {
	fs, flags := newFlagSet(name, stderr)
	cfg, err := flags.parse(fs, args)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := newPlanner(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Debug("map loaded",
		zap.String("path", cfg.Map.Path), zap.Int("side", p.Grid().Side),
		zap.Float64("cell_size", cfg.Planner.CellSize))
	return cfg, log, p, nil
}

func newPlanner(cfg *config.Config) (*planner.Planner, error) {
	g, err := mapio.ReadMapFile(cfg.Map.Path, cfg.Map.Side)
	if err != nil {
		return nil, err
	}
	opts := []planner.Option{
		planner.WithDilationRadius(cfg.Planner.DilationRadius),
		planner.WithCellSize(cfg.Planner.CellSize),
	}
	if cfg.Planner.FlipY {
		opts = append(opts, planner.WithFlipY())
	}
	return planner.NewFromGraph(g, opts...)
}

// planOnce plans the configured start and goal, retrying on the raw map
// when dilation blocks every path and the config allows it.
func planOnce(cfg *config.Config, log *zap.Logger, p *planner.Planner) (*planner.Result, bool, error) {
	start := planner.Point(cfg.Planner.Start)
	goal := planner.Point(cfg.Planner.Goal)
	dilate := cfg.Planner.Dilate

	res, err := p.PlanDetailed(start, goal, dilate)
	if err != nil && dilate && cfg.Planner.RetryUndilated && errors.Is(err, planner.ErrNoPath) {
		log.Warn("dilated map has no path, retrying without dilation", zap.Error(err))
		dilate = false
		res, err = p.PlanDetailed(start, goal, dilate)
	}
	if err != nil {
		return nil, dilate, err
	}
	log.Info("planned",
		zap.Stringer("start", start), zap.Stringer("goal", goal),
		zap.Bool("dilated", dilate), zap.Int("waypoints", len(res.Waypoints)),
		zap.Int("hops", res.Hops), zap.Int("labeled", res.Labeled))
	return res, dilate, nil
}

func runPlan(args []string, stdout, stderr io.Writer) error {
	cfg, log, p, err := setup("plan", args, stderr)
	if err != nil {
		return err
	}
	defer log.Sync()

	res, dilated, err := planOnce(cfg, log, p)
	if err != nil {
		return err
	}
	if err := writeOutputs(cfg, p, res, dilated); err != nil {
		return err
	}

	for _, w := range res.Waypoints {
		fmt.Fprintln(stdout, w)
	}
	fmt.Fprintf(stdout, "hops %d\n", res.Hops)
	return nil
}

func writeOutputs(cfg *config.Config, p *planner.Planner, res *planner.Result, dilated bool) error {
	out := cfg.Output
	if out.MapPath != "" && out.MapPath != skipOutput {
		if err := mapio.WriteMapFile(out.MapPath, p.Grid(), res.Cells); err != nil {
			return err
		}
	}
	if out.PlanPath != "" && out.PlanPath != skipOutput {
		if err := mapio.WritePlanFile(out.PlanPath, res.Waypoints); err != nil {
			return err
		}
	}
	if out.PlanYAMLPath != "" && out.PlanYAMLPath != skipOutput {
		doc := mapio.PlanDocument{
			Start:     planner.Point(cfg.Planner.Start),
			Goal:      planner.Point(cfg.Planner.Goal),
			Dilated:   dilated,
			Hops:      res.Hops,
			Waypoints: res.Waypoints,
		}
		if err := mapio.WritePlanYAMLFile(out.PlanYAMLPath, doc); err != nil {
			return err
		}
	}
	return nil
}

func runView(args []string, stdout, stderr io.Writer) error {
	cfg, log, p, err := setup("view", args, stderr)
	if err != nil {
		return err
	}
	defer log.Sync()

	g := p.Grid()
	f := p.Frame()
	start, goal := -1, -1
	if x, y, err := f.ToGrid(planner.Point(cfg.Planner.Start)); err == nil {
		start = g.Index(x, y)
	}
	if x, y, err := f.ToGrid(planner.Point(cfg.Planner.Goal)); err == nil {
		goal = g.Index(x, y)
	}

	v := render.NewView(g, start, goal)
	res, dilated, err := planOnce(cfg, log, p)
	if err != nil {
		v.Status = fmt.Sprintf("%v  [q quit, l labels]", err)
	} else {
		v.Path = waypoint.Cells(g, res.Start, res.Cells)
		v.Waypoints = res.Cells
		v.Status = fmt.Sprintf("hops %d  waypoints %d  labeled %d  dilated %t  [q quit, l labels]",
			res.Hops, len(res.Waypoints), res.Labeled, dilated)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	render.Run(screen, v)
	screen.Fini()
	return nil
}

func runServe(args []string, stdout, stderr io.Writer) error {
	cfg, log, p, err := setup("serve", args, stderr)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(p, cfg, log).ListenAndServe(ctx)
}

func runInspect(args []string, stdout, stderr io.Writer) error {
	cfg, log, p, err := setup("inspect", args, stderr)
	if err != nil {
		return err
	}
	defer log.Sync()

	g := p.Grid()
	f := p.Frame()
	occupied := 0
	for i := 0; i < g.Len(); i++ {
		if g.Cell(i).Occupied {
			occupied++
		}
	}
	comps := g.FreeComponents()
	fmt.Fprintf(stdout, "map       %s\n", cfg.Map.Path)
	fmt.Fprintf(stdout, "side      %d cells, %.2f m each, extent ±%.2f m\n",
		g.Side, f.CellSize, float64(g.Side)*f.CellSize/2)
	fmt.Fprintf(stdout, "occupied  %d of %d\n", occupied, g.Len())
	fmt.Fprintf(stdout, "regions   %d\n", len(comps))
	for i, c := range comps {
		x, y := g.Coordinate(c[0])
		fmt.Fprintf(stdout, "  %d: %d cells from %v\n", i, len(c), f.ToPhysical(x, y))
	}
	locate(stdout, g, f, cfg, "")

	if cfg.Planner.Dilate {
		marked := g.Dilate(cfg.Planner.DilationRadius)
		fmt.Fprintf(stdout, "dilated   %d cells at radius %d, %d regions\n",
			marked, cfg.Planner.DilationRadius, len(g.FreeComponents()))
		locate(stdout, g, f, cfg, "  ")
	}
	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, g.String())
	return nil
}

// locate prints the region holding the configured start and goal, and
// whether a plan between them can succeed on g as it stands.
func locate(w io.Writer, g *gridgraph.GridGraph, f planner.Frame, cfg *config.Config, indent string) {
	ids := g.ComponentOf()
	region := func(name string, p planner.Point) int {
		x, y, err := f.ToGrid(p)
		switch {
		case err != nil:
			fmt.Fprintf(w, "%s%-9s %v outside the map\n", indent, name, p)
		case ids[g.Index(x, y)] < 0:
			fmt.Fprintf(w, "%s%-9s %v is occupied\n", indent, name, p)
		default:
			id := ids[g.Index(x, y)]
			fmt.Fprintf(w, "%s%-9s %v in region %d\n", indent, name, p, id)
			return id
		}
		return -1
	}
	start := region("start", planner.Point(cfg.Planner.Start))
	goal := region("goal", planner.Point(cfg.Planner.Goal))
	if start >= 0 && goal >= 0 {
		if start == goal {
			fmt.Fprintf(w, "%sconnected yes\n", indent)
		} else {
			fmt.Fprintf(w, "%sconnected no\n", indent)
		}
	}
}
