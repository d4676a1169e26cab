package mapio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kenny-designs/wavefront/planner"
)

// WritePlan writes waypoints in plan text format: the coordinate count
// followed by x y pairs, on one line.
func WritePlan(w io.Writer, waypoints []planner.Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d", 2*len(waypoints))
	for _, p := range waypoints {
		fmt.Fprintf(bw, " %s %s", formatCoord(p.X), formatCoord(p.Y))
	}
	bw.WriteString("\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mapio: write plan: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ReadPlan reads a plan written by WritePlan.
func ReadPlan(r io.Reader) ([]planner.Point, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("mapio: read plan: %w", err)
		}
		return nil, fmt.Errorf("%w: missing length", ErrShortPlan)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("mapio: plan length: %w", err)
	}
	if n < 0 || n%2 != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrMismatchedPlan, n)
	}

	coords := make([]float64, 0, n)
	for len(coords) < n && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("mapio: plan coordinate %d: %w", len(coords), err)
		}
		coords = append(coords, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mapio: read plan: %w", err)
	}
	if len(coords) < n {
		return nil, fmt.Errorf("%w: got %d of %d coordinates", ErrShortPlan, len(coords), n)
	}

	out := make([]planner.Point, n/2)
	for i := range out {
		out[i] = planner.Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return out, nil
}

// WritePlanFile writes a text plan to path.
func WritePlanFile(path string, waypoints []planner.Point) error {
	return writeFile(path, func(w io.Writer) error {
		return WritePlan(w, waypoints)
	})
}

// ReadPlanFile reads a text plan from path.
func ReadPlanFile(path string) ([]planner.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapio: open plan %s: %w", path, err)
	}
	defer f.Close()
	return ReadPlan(f)
}

// PlanDocument is the YAML form of a plan.
type PlanDocument struct {
	Start     planner.Point   `yaml:"start"`
	Goal      planner.Point   `yaml:"goal"`
	Dilated   bool            `yaml:"dilated"`
	Hops      int             `yaml:"hops"`
	Waypoints []planner.Point `yaml:"waypoints"`
}

// WritePlanYAML encodes doc as YAML.
func WritePlanYAML(w io.Writer, doc PlanDocument) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("mapio: encode plan: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("mapio: encode plan: %w", err)
	}
	return nil
}

// ReadPlanYAML decodes a YAML plan document.
func ReadPlanYAML(r io.Reader) (*PlanDocument, error) {
	var doc PlanDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("mapio: decode plan: %w", err)
	}
	if len(doc.Waypoints) == 0 {
		return nil, fmt.Errorf("%w: no waypoints", ErrShortPlan)
	}
	return &doc, nil
}

// WritePlanYAMLFile writes a YAML plan to path.
func WritePlanYAMLFile(path string, doc PlanDocument) error {
	return writeFile(path, func(w io.Writer) error {
		return WritePlanYAML(w, doc)
	})
}
