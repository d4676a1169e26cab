package mapio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/kenny-designs/wavefront/gridgraph"
)

var (
	// ErrMapSize indicates a map whose value count does not fit the grid.
	ErrMapSize = errors.New("mapio: map value count does not match grid size")
	// ErrMismatchedPlan indicates a plan with an odd coordinate count.
	ErrMismatchedPlan = errors.New("mapio: plan has mismatched x and y coordinates")
	// ErrShortPlan indicates a plan with fewer coordinates than declared.
	ErrShortPlan = errors.New("mapio: plan ended before its declared length")
)

// Cell values written to map dumps.
const (
	Free     = 0
	Occupied = 1
	Waypoint = 2
)

// readInts reads every whitespace-separated integer from r.
func readInts(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var out []int
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("mapio: value %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mapio: read map: %w", err)
	}
	return out, nil
}

// ReadMap reads a side×side map from r.
// side <= 0 infers the side from the value count, which must then be a
// perfect square.
func ReadMap(r io.Reader, side int) (*gridgraph.GridGraph, error) {
	vals, err := readInts(r)
	if err != nil {
		return nil, err
	}
	if side <= 0 {
		side = int(math.Sqrt(float64(len(vals))))
		if side == 0 || side*side != len(vals) {
			return nil, fmt.Errorf("%w: %d values is not a square grid", ErrMapSize, len(vals))
		}
	}
	if len(vals) != side*side {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrMapSize, len(vals), side*side)
	}
	return gridgraph.FromInts(vals, side)
}

// ReadMapFile reads a map from the file at path.
func ReadMapFile(path string, side int) (*gridgraph.GridGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapio: open map %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadMap(f, side)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WriteMap writes g in map layout with the cells in waypoints marked as 2.
// Dilated cells are written as free so the dump matches the input map.
func WriteMap(w io.Writer, g *gridgraph.GridGraph, waypoints []int) error {
	marks := make(map[int]bool, len(waypoints))
	for _, idx := range waypoints {
		marks[idx] = true
	}
	return writeRows(w, g, func(idx int) string {
		c := g.Cell(idx)
		switch {
		case c.Occupied && !c.Dilated:
			return strconv.Itoa(Occupied)
		case marks[idx]:
			return strconv.Itoa(Waypoint)
		}
		return strconv.Itoa(Free)
	})
}

// WriteLabels writes the distance field of g in two-character columns:
// labels right-aligned, obstacles as "#", dilated cells as "+", cells
// consumed by extraction as "*" and unlabeled cells as ".".
func WriteLabels(w io.Writer, g *gridgraph.GridGraph) error {
	return writeRows(w, g, func(idx int) string {
		c := g.Cell(idx)
		switch {
		case c.Dilated:
			return " +"
		case c.Occupied:
			return " #"
		case c.Distance == gridgraph.Consumed:
			return " *"
		case !c.Labeled():
			return " ."
		}
		return fmt.Sprintf("%2d", c.Distance)
	})
}

// writeRows writes one line per grid row, cells separated by spaces.
func writeRows(w io.Writer, g *gridgraph.GridGraph, cell func(idx int) string) error {
	bw := bufio.NewWriter(w)
	row := make([]string, g.Side)
	for y := 0; y < g.Side; y++ {
		for x := 0; x < g.Side; x++ {
			row[x] = cell(g.Index(x, y))
		}
		if _, err := bw.WriteString(strings.Join(row, " ") + "\n"); err != nil {
			return fmt.Errorf("mapio: write map: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mapio: write map: %w", err)
	}
	return nil
}

// WriteMapFile writes a map dump to path, replacing any existing file.
func WriteMapFile(path string, g *gridgraph.GridGraph, waypoints []int) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteMap(w, g, waypoints)
	})
}

// writeFile creates path and closes it, reporting the first error.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("mapio: close %s: %w", path, cerr)
		}
	}()
	return fn(f)
}
