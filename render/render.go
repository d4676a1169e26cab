// Package render draws a planned grid in the terminal with tcell.
//
// Each cell takes two columns so the grid keeps a square aspect:
//
//	██  obstacle
//	▒▒  dilated margin
//	 7  wavefront label (last digit)
//	 ·  unlabeled free cell
//	 •  path cell, ◆ waypoint, S start, G goal
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kenny-designs/wavefront/gridgraph"
)

var (
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDilated  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleLabel    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleFree     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEndpoint = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

// View is one plan to display.
type View struct {
	Grid *gridgraph.GridGraph
	// Path holds every cell from start to goal; Waypoints the corners.
	Path      []int
	Waypoints []int
	Start     int
	Goal      int
	// Status is shown on the last screen line.
	Status string
	// Labels shows wavefront distances on free cells.
	Labels bool
}

// NewView returns a view of g with labels shown and no path.
func NewView(g *gridgraph.GridGraph, start, goal int) *View {
	return &View{Grid: g, Start: start, Goal: goal, Labels: true}
}

// Draw renders v onto s, clipped to the screen size, and shows it.
func Draw(s tcell.Screen, v *View) {
	s.Clear()
	w, h := s.Size()

	onPath := make(map[int]bool, len(v.Path))
	for _, idx := range v.Path {
		onPath[idx] = true
	}
	corner := make(map[int]bool, len(v.Waypoints))
	for _, idx := range v.Waypoints {
		corner[idx] = true
	}

	g := v.Grid
	for y := 0; y < g.Side && y < h-1; y++ {
		for x := 0; x < g.Side && 2*x+1 < w; x++ {
			idx := g.Index(x, y)
			left, right, style := v.glyph(idx, onPath[idx], corner[idx])
			s.SetContent(2*x, y, left, nil, style)
			s.SetContent(2*x+1, y, right, nil, style)
		}
	}

	if v.Status != "" && h > 0 {
		col := 0
		for _, r := range v.Status {
			if col >= w {
				break
			}
			s.SetContent(col, h-1, r, nil, styleStatus)
			col++
		}
	}
	s.Show()
}

// glyph returns the two runes and style for one cell.
func (v *View) glyph(idx int, onPath, corner bool) (rune, rune, tcell.Style) {
	c := v.Grid.Cell(idx)
	switch {
	case idx == v.Start:
		return ' ', 'S', styleEndpoint
	case idx == v.Goal:
		return ' ', 'G', styleEndpoint
	case c.Dilated:
		return '▒', '▒', styleDilated
	case c.Occupied:
		return '█', '█', styleObstacle
	case corner:
		return ' ', '◆', stylePath
	case onPath:
		return ' ', '•', stylePath
	case v.Labels && c.Labeled():
		return ' ', rune('0' + c.Distance%10), styleLabel
	}
	return ' ', '·', styleFree
}

// Run draws v and blocks until the user quits with q, Esc or Ctrl-C.
// l toggles the wavefront labels; a resize redraws.
func Run(s tcell.Screen, v *View) {
	Draw(s, v)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Sync()
			Draw(s, v)
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'l':
				v.Labels = !v.Labels
				Draw(s, v)
			}
		}
	}
}
