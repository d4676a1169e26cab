package gridgraph

// FreeComponents finds all contiguous regions of free cells under 4-connectivity,
// taking the current occupancy (dilation included) into account.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS discovery order from its lowest index.
//
// Two cells can be joined by a plan only if they share a component.
//
// Time:   O(N).
// Memory: O(N) for seen flags and output.
func (gg *GridGraph) FreeComponents() [][]int {
	seen := make([]bool, len(gg.cells))
	var comps [][]int

	for i0 := range gg.cells {
		if gg.cells[i0].Occupied || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range gg.cells[u].Neighbors {
				if v == NoNeighbor || gg.cells[v].Occupied || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentOf returns the component id of every cell as produced by
// FreeComponents, with -1 for occupied cells.
func (gg *GridGraph) ComponentOf() []int {
	ids := make([]int, len(gg.cells))
	for i := range ids {
		ids[i] = -1
	}
	for id, comp := range gg.FreeComponents() {
		for _, idx := range comp {
			ids[idx] = id
		}
	}
	return ids
}
