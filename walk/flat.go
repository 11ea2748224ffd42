package walk

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/path"
)

// Flat walks the flat map with row/column wraparound.
type Flat struct {
	g   *grid.Grid
	pos grid.Position
	dir grid.Direction
}

// NewFlat places a walker on the start cell of g, facing right.
func NewFlat(g *grid.Grid) (*Flat, error) {
	start, err := g.Start()
	if err != nil {
		return nil, err
	}
	return FlatAt(g, start, grid.Right)
}

// FlatAt places a walker on pos facing dir. pos must be an open cell.
func FlatAt(g *grid.Grid, pos grid.Position, dir grid.Direction) (*Flat, error) {
	if !g.InBounds(pos) || g.At(pos) != grid.Open {
		return nil, fmt.Errorf("%w: %v", ErrNotOpen, pos)
	}
	return &Flat{g: g, pos: pos, dir: dir}, nil
}

// Position returns the current flat position.
func (w *Flat) Position() grid.Position { return w.pos }

// Direction returns the current heading.
func (w *Flat) Direction() grid.Direction { return w.dir }

// Turn rotates the walker in place.
func (w *Flat) Turn(t path.Turn) {
	w.dir = turn(w.dir, t)
}

// Step moves one cell forward, wrapping across void. It reports false and
// stays put if the target is a wall. The error is always nil.
func (w *Flat) Step() (bool, error) {
	next := w.pos.Step(w.dir)
	if w.g.At(next) == grid.Void {
		next = w.wrap()
	}
	switch w.g.At(next) {
	case grid.Open:
		w.pos = next
		return true, nil
	case grid.Wall:
		return false, nil
	}
	panic(fmt.Sprintf("walk: flat wrap from %v heading %v landed on void %v", w.pos, w.dir, next))
}

// wrap scans from the current cell against the heading and returns the last
// cell before void. The void border guarantees the scan ends.
func (w *Flat) wrap() grid.Position {
	back := w.dir.Opposite()
	p := w.pos
	for {
		prev := p.Step(back)
		if w.g.At(prev) == grid.Void {
			return p
		}
		p = prev
	}
}

func turn(d grid.Direction, t path.Turn) grid.Direction {
	switch t {
	case path.Clockwise:
		return d.Clockwise()
	case path.CounterClockwise:
		return d.CounterClockwise()
	}
	return d
}
