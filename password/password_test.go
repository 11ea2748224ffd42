package password_test

import (
	"testing"

	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/password"
	"github.com/stretchr/testify/assert"
)

// TestCompute pins the scores of the two example runs and the facing weights.
func TestCompute(t *testing.T) {
	cases := []struct {
		name string
		pos  grid.Position
		dir  grid.Direction
		want int
	}{
		{"FlatDemo", grid.Position{Row: 5, Col: 7}, grid.Right, 6032},
		{"CubeDemo", grid.Position{Row: 4, Col: 6}, grid.Up, 5031},
		{"Origin", grid.Position{}, grid.Right, 1004},
		{"Down", grid.Position{}, grid.Down, 1005},
		{"Left", grid.Position{}, grid.Left, 1006},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := password.Compute(tc.pos, tc.dir)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, password.Compute(tc.pos, tc.dir), "Compute must be idempotent")
		})
	}
}

// TestExplain shows the formula with 1-based coordinates.
func TestExplain(t *testing.T) {
	got := password.Explain(grid.Position{Row: 4, Col: 6}, grid.Up)
	assert.Equal(t, "1000 * 5 + 4 * 7 + 3 = 5031", got)
}
