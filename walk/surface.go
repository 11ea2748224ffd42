package walk

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/cube"
	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/path"
)

// Surface walks the faces of a folded cube.
type Surface struct {
	c    *cube.Cube
	face cube.Face
	pos  grid.Position
	dir  grid.Direction
}

// NewSurface places a walker on the face cell that holds the flat position
// start, facing right.
func NewSurface(c *cube.Cube, start grid.Position) (*Surface, error) {
	face, local, ok := c.Locate(start)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not on a face", ErrNotOpen, start)
	}
	return SurfaceAt(c, face, local, grid.Right)
}

// SurfaceAt places a walker on face at the local position pos, facing dir.
// pos must be an open cell of the face.
func SurfaceAt(c *cube.Cube, face cube.Face, pos grid.Position, dir grid.Direction) (*Surface, error) {
	if !face.Valid() || !c.InFace(pos) || c.Cell(face, pos) != grid.Open {
		return nil, fmt.Errorf("%w: %v %v", ErrNotOpen, face, pos)
	}
	return &Surface{c: c, face: face, pos: pos, dir: dir}, nil
}

// Face returns the current face.
func (w *Surface) Face() cube.Face { return w.face }

// Position returns the current face-local position.
func (w *Surface) Position() grid.Position { return w.pos }

// Direction returns the current heading, relative to the current face.
func (w *Surface) Direction() grid.Direction { return w.dir }

// FlatPosition returns the current position projected onto the flat map.
func (w *Surface) FlatPosition() grid.Position {
	return w.c.FlatCoordinates(w.face, w.pos)
}

// Turn rotates the walker in place.
func (w *Surface) Turn(t path.Turn) {
	w.dir = turn(w.dir, t)
}

// Step moves one cell forward, crossing to the adjacent face when the step
// leaves the current one. It reports false and changes nothing if the
// target is a wall. Returns cube.ErrUndefinedTransition if the cube has no
// transition for the edge being crossed.
func (w *Surface) Step() (bool, error) {
	next, face, dir := w.pos.Step(w.dir), w.face, w.dir
	if !w.c.InFace(next) {
		tr, err := w.c.Resolve(w.face, w.dir)
		if err != nil {
			return false, err
		}
		next, face, dir = tr.Remap(w.pos, w.dir, w.c.Size()), tr.To, tr.Dir
	}
	switch w.c.Cell(face, next) {
	case grid.Open:
		w.face, w.pos, w.dir = face, next, dir
		return true, nil
	case grid.Wall:
		return false, nil
	}
	panic(fmt.Sprintf("walk: step from %v %v heading %v landed on void", w.face, w.pos, w.dir))
}
