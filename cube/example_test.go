// File: cube/example_test.go
package cube_test

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/cube"
	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/input"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Fold
////////////////////////////////////////////////////////////////////////////////

// ExampleFold folds the built-in example net and prints where each edge of
// the Top face leads.
// Scenario:
//
//   - Six 4×4 faces laid out as
//     ..T.
//     ElF.
//     ..Br
//   - Top's right edge meets Right upside down; its top edge meets Rear.
func ExampleFold() {
	c, _ := cube.Fold(input.Demo().Grid)

	fmt.Println("face size:", c.Size())
	for _, d := range grid.Directions {
		tr, _ := c.Resolve(cube.Top, d)
		fmt.Printf("Top/%-5v -> %-5v heading %-5v flip=%v\n", d, tr.To, tr.Dir, tr.Flip)
	}

	// Output:
	// face size: 4
	// Top/right -> Right heading left  flip=true
	// Top/down  -> Front heading down  flip=false
	// Top/left  -> Left  heading down  flip=false
	// Top/up    -> Rear  heading down  flip=true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Transition.Remap
////////////////////////////////////////////////////////////////////////////////

// ExampleTransition_Remap walks off the right edge of Front.
func ExampleTransition_Remap() {
	c, _ := cube.Fold(input.Demo().Grid)

	from := grid.Position{Row: 1, Col: 3}
	tr, _ := c.Resolve(cube.Front, grid.Right)
	to := tr.Remap(from, grid.Right, c.Size())

	fmt.Println("flat", c.FlatCoordinates(cube.Front, from), "->", c.FlatCoordinates(tr.To, to), "heading", tr.Dir)

	// Output:
	// flat (5,11) -> (8,14) heading down
}
