package gridgraph

// Dilate marks every free cell within Chebyshev distance radius of an
// original obstacle as occupied and dilated, and returns how many cells it
// marked.
//
// Radius 1 covers the 8-neighborhood: each of the four neighbors plus each
// neighbor's neighbor one direction step over. The neighborhood is reached
// only through neighbor slots, so it is clipped at grid borders and never
// wraps to another row.
//
// Only cells that are occupied and not dilated act as sources, which makes
// Dilate idempotent for a given radius. Originally occupied cells are never
// marked dilated. radius <= 0 is a no-op.
//
// Complexity: O(N·radius²).
func (gg *GridGraph) Dilate(radius int) int {
	if radius <= 0 {
		return 0
	}
	var sources []int
	for i := range gg.cells {
		if gg.cells[i].Occupied && !gg.cells[i].Dilated {
			sources = append(sources, i)
		}
	}

	marked := 0
	for _, s := range sources {
		marked += gg.dilateRow(s, radius)
		for _, d := range [...]Direction{Up, Down} {
			row := s
			for k := 0; k < radius; k++ {
				next, ok := gg.Neighbor(row, d)
				if !ok {
					break
				}
				row = next
				marked += gg.dilateRow(row, radius)
			}
		}
	}
	return marked
}

// dilateRow marks center and up to radius cells to its left and right.
func (gg *GridGraph) dilateRow(center, radius int) int {
	marked := gg.markDilated(center)
	for _, d := range [...]Direction{Left, Right} {
		c := center
		for k := 0; k < radius; k++ {
			next, ok := gg.Neighbor(c, d)
			if !ok {
				break
			}
			c = next
			marked += gg.markDilated(c)
		}
	}
	return marked
}

func (gg *GridGraph) markDilated(idx int) int {
	c := &gg.cells[idx]
	if c.Occupied {
		return 0
	}
	c.Occupied = true
	c.Dilated = true
	return 1
}

// Reset prepares the graph for a new plan: every cell loses its Visited
// mark and distance label, and dilated cells become free again. Cells that
// were occupied in the original buffer are left untouched.
// Complexity: O(N).
func (gg *GridGraph) Reset() {
	for i := range gg.cells {
		c := &gg.cells[i]
		c.Visited = false
		if c.Dilated {
			c.Occupied = false
			c.Dilated = false
		}
		c.Distance = Unset
	}
}
