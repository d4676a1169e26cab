// Command wavefront plans paths on occupancy-grid maps.
//
// Usage:
//
//	wavefront <command> [flags]
//
// Commands:
//
//	plan     plan once and write map-out.txt and plan-out.txt
//	view     plan once and show the result in the terminal
//	serve    serve plans over HTTP
//	inspect  describe a map file
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kenny-designs/wavefront/planner"
)

// Exit codes.
const (
	exitOK     = 0
	exitError  = 1
	exitUsage  = 2
	exitNoPlan = 3
)

var errUsage = errors.New("usage")

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wavefront <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  plan     Plan from -start to -goal, write the map dump and plan files")
	fmt.Fprintln(w, "  view     Plan and draw the grid, labels and path in the terminal")
	fmt.Fprintln(w, "  serve    Serve POST /plan, GET /map, GET /plan/stream and GET /metrics")
	fmt.Fprintln(w, "  inspect  Print a map's size, obstacles and free regions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'wavefront <command> -h' for the command's flags.")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitUsage
	}
	cmd := args[0]
	if cmd == "-h" || cmd == "--help" || cmd == "help" {
		printUsage(stdout)
		return exitOK
	}

	commands := map[string]func([]string, io.Writer, io.Writer) error{
		"plan":    runPlan,
		"view":    runView,
		"serve":   runServe,
		"inspect": runInspect,
	}
	fn, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		printUsage(stderr)
		return exitUsage
	}

	err := fn(args[1:], stdout, stderr)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		if err != errUsage {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}
	fmt.Fprintf(stderr, "ERROR [%s]: %v\n", cmd, err)
	if errors.Is(err, planner.ErrNoPath) ||
		errors.Is(err, planner.ErrUnreachableGoal) ||
		errors.Is(err, planner.ErrOutOfBounds) {
		return exitNoPlan
	}
	return exitError
}
