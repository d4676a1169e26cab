// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/kenny-designs/wavefront/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Dilate and Reset
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Dilate inflates a single wall cell by one cell in every
// direction, diagonals included, then undoes it with Reset.
// Scenario:
//
//   - 5×5 map, 1 = wall, 0 = free.
//   - Dilate(1) turns the 8 cells around the wall into '+' cells.
//   - Reset brings back the original map.
func ExampleGridGraph_Dilate() {
	gg, _ := gridgraph.FromInts([]int{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}, 5)

	fmt.Println("marked:", gg.Dilate(1))
	fmt.Print(gg)
	gg.Reset()
	fmt.Print(gg)

	// Output:
	// marked: 8
	// .....
	// ..+++
	// ..+#+
	// ..+++
	// .....
	// .....
	// .....
	// ...#.
	// .....
	// .....
}

////////////////////////////////////////////////////////////////////////////////
// Example: FreeComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_FreeComponents lists the free regions of a map split by
// a wall with a single door.
func ExampleGridGraph_FreeComponents() {
	gg, _ := gridgraph.FromInts([]int{
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
	}, 3)

	for i, comp := range gg.FreeComponents() {
		fmt.Printf("region %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// region 0: (0,0) (0,1) (0,2)
	// region 1: (2,0) (2,1) (2,2)
}
