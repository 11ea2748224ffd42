package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cubewalk/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty maps and unknown characters.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"NoLines", nil, grid.ErrEmptyGrid},
		{"OnlyEmptyLines", []string{"", ""}, grid.ErrEmptyGrid},
		{"BadCharacter", []string{"..#", ".x."}, grid.ErrInvalidCell},
		{"Digit", []string{"1"}, grid.ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.lines)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%q) error = %v; want %v", tc.lines, err, tc.err)
			}
		})
	}
}

// TestNew_PadsShortLines checks that ragged lines are padded with Void and
// that the width is the longest line.
func TestNew_PadsShortLines(t *testing.T) {
	g, err := grid.New([]string{"  ..", "#.", "...#.\r"})
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, grid.Void, g.At(grid.Position{Row: 0, Col: 0}))
	assert.Equal(t, grid.Open, g.At(grid.Position{Row: 0, Col: 2}))
	assert.Equal(t, grid.Void, g.At(grid.Position{Row: 1, Col: 4}))
	assert.Equal(t, grid.Wall, g.At(grid.Position{Row: 2, Col: 3}))
	assert.Equal(t, 7, g.Count(grid.Open))
	assert.Equal(t, 2, g.Count(grid.Wall))
}

//----------------------------------------------------------------------------//
// Border and InBounds Tests
//----------------------------------------------------------------------------//

// TestAt_Border checks that the one-cell border reads as Void in every
// direction and that reading past it panics.
func TestAt_Border(t *testing.T) {
	g, err := grid.New([]string{"..", ".."})
	require.NoError(t, err)

	border := []grid.Position{{-1, 0}, {0, -1}, {2, 1}, {1, 2}, {-1, -1}, {2, 2}}
	for _, p := range border {
		assert.Equal(t, grid.Void, g.At(p), "At(%v)", p)
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
	assert.True(t, g.InBounds(grid.Position{Row: 1, Col: 1}))

	assert.Panics(t, func() { g.At(grid.Position{Row: -2, Col: 0}) })
	assert.Panics(t, func() { g.At(grid.Position{Row: 0, Col: 3}) })
}

// TestStart finds the left-most open cell of the first row.
func TestStart(t *testing.T) {
	g, err := grid.New([]string{"  #..", "  ..."})
	require.NoError(t, err)
	start, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 0, Col: 3}, start)

	g, err = grid.New([]string{" ##", "..."})
	require.NoError(t, err)
	_, err = g.Start()
	assert.ErrorIs(t, err, grid.ErrNoStart)
}

// TestString renders the map back without the border.
func TestString(t *testing.T) {
	lines := []string{"  ..#", "....", "  #"}
	g, err := grid.New(lines)
	require.NoError(t, err)
	assert.Equal(t, "  ..#\n....\n  #\n", g.String())
}

//----------------------------------------------------------------------------//
// Direction Tests
//----------------------------------------------------------------------------//

// TestDirection_Rotations checks that rotations are inverse to each other and
// that four quarter turns return the original heading.
func TestDirection_Rotations(t *testing.T) {
	for _, d := range grid.Directions {
		assert.Equal(t, d, d.CounterClockwise().Clockwise(), "cw(ccw(%v))", d)
		assert.Equal(t, d, d.Clockwise().CounterClockwise(), "ccw(cw(%v))", d)
		assert.Equal(t, d, d.Clockwise().Clockwise().Clockwise().Clockwise(), "cw^4(%v)", d)
		assert.Equal(t, d, d.Opposite().Opposite(), "opp(opp(%v))", d)
		assert.Equal(t, d.Clockwise().Clockwise(), d.Opposite(), "cw^2(%v)", d)
	}
	assert.Equal(t, grid.Down, grid.Right.Clockwise())
	assert.Equal(t, grid.Up, grid.Right.CounterClockwise())
	assert.Equal(t, grid.Right, grid.Up.Clockwise())
}

// TestDirection_Weights pins the facing values used by the password.
func TestDirection_Weights(t *testing.T) {
	want := map[grid.Direction]int{grid.Right: 0, grid.Down: 1, grid.Left: 2, grid.Up: 3}
	for d, w := range want {
		assert.Equal(t, w, d.Weight(), d.String())
	}
}

// TestPosition_Step moves one cell in each direction and back.
func TestPosition_Step(t *testing.T) {
	p := grid.Position{Row: 3, Col: 5}
	assert.Equal(t, grid.Position{Row: 3, Col: 6}, p.Step(grid.Right))
	assert.Equal(t, grid.Position{Row: 4, Col: 5}, p.Step(grid.Down))
	assert.Equal(t, grid.Position{Row: 3, Col: 4}, p.Step(grid.Left))
	assert.Equal(t, grid.Position{Row: 2, Col: 5}, p.Step(grid.Up))
	for _, d := range grid.Directions {
		assert.Equal(t, p, p.Step(d).Step(d.Opposite()))
	}
}
