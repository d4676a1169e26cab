package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kenny-designs/wavefront/config"
	"github.com/kenny-designs/wavefront/planner"
)

// pointValue is a flag.Value for "x,y" in meters.
type pointValue struct {
	p config.Point
}

func (v *pointValue) String() string {
	return fmt.Sprintf("%g,%g", v.p.X, v.p.Y)
}

func (v *pointValue) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}
	v.p = config.Point{X: x, Y: y}
	return nil
}

// commonFlags are shared by every command. Values given on the command
// line override the config file.
type commonFlags struct {
	config   string
	mapPath  string
	side     int
	start    pointValue
	goal     pointValue
	dilate   bool
	radius   int
	cellSize float64
	flipY    bool
	retry    bool
	outMap   string
	outPlan  string
	outYAML  string
	addr     string
	logLevel string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "TOML config file")
	fs.StringVar(&c.mapPath, "map", "", "map file (default from config: map.txt)")
	fs.IntVar(&c.side, "side", 0, "cells per map side, 0 to infer (default from config: 32)")
	fs.Var(&c.start, "start", "start point x,y in meters")
	fs.Var(&c.goal, "goal", "goal point x,y in meters")
	fs.BoolVar(&c.dilate, "dilate", true, "inflate obstacles before planning")
	fs.IntVar(&c.radius, "radius", 1, "dilation radius in cells")
	fs.Float64Var(&c.cellSize, "cell-size", planner.DefaultCellSize, "cell edge length in meters")
	fs.BoolVar(&c.flipY, "flip-y", false, "put map row 0 at +Y")
	fs.BoolVar(&c.retry, "retry-undilated", false, "replan on the raw map when dilation blocks every path")
	fs.StringVar(&c.outMap, "out-map", "", "map dump path, - to skip (default from config: map-out.txt)")
	fs.StringVar(&c.outPlan, "out-plan", "", "plan path, - to skip (default from config: plan-out.txt)")
	fs.StringVar(&c.outYAML, "out-yaml", "", "YAML plan path")
	fs.StringVar(&c.addr, "addr", "", "listen address for serve (default from config: 127.0.0.1:8080)")
	fs.StringVar(&c.logLevel, "log-level", "", "log level (default from config: info)")
}

// parse parses args and returns the config file overlaid with the flags
// that were set.
func (c *commonFlags) parse(fs *flag.FlagSet, args []string) (*config.Config, error) {
	// the flag package has already reported parse errors
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}

	cfg, err := config.Load(c.config)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "map":
			cfg.Map.Path = c.mapPath
		case "side":
			cfg.Map.Side = c.side
		case "start":
			cfg.Planner.Start = c.start.p
		case "goal":
			cfg.Planner.Goal = c.goal.p
		case "dilate":
			cfg.Planner.Dilate = c.dilate
		case "radius":
			cfg.Planner.DilationRadius = c.radius
		case "cell-size":
			cfg.Planner.CellSize = c.cellSize
		case "flip-y":
			cfg.Planner.FlipY = c.flipY
		case "retry-undilated":
			cfg.Planner.RetryUndilated = c.retry
		case "out-map":
			cfg.Output.MapPath = c.outMap
		case "out-plan":
			cfg.Output.PlanPath = c.outPlan
		case "out-yaml":
			cfg.Output.PlanYAMLPath = c.outYAML
		case "addr":
			cfg.Server.BindAddress = c.addr
		case "log-level":
			cfg.Logging.Level = c.logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	return cfg, nil
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	c := &commonFlags{}
	c.register(fs)
	return fs, c
}
