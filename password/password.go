// Package password scores the final state of a walk.
//
// The puzzle numbers rows and columns from 1, so a walker that ends on the
// 0-based flat position (5,7) facing right scores
//
//	1000*6 + 4*8 + 0 = 6032
package password

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/grid"
)

// Compute returns 1000*row + 4*column + facing for the 0-based flat
// position pos, with rows and columns counted from 1.
func Compute(pos grid.Position, dir grid.Direction) int {
	return 1000*(pos.Row+1) + 4*(pos.Col+1) + dir.Weight()
}

// Explain renders the arithmetic behind Compute.
func Explain(pos grid.Position, dir grid.Direction) string {
	return fmt.Sprintf("1000 * %d + 4 * %d + %d = %d",
		pos.Row+1, pos.Col+1, dir.Weight(), Compute(pos, dir))
}
