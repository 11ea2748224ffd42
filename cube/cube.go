package cube

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/grid"
)

// Cube is a folded net: six face-local grids plus the transition table.
// It is immutable once built.
type Cube struct {
	layout Layout
	faces  [faceCount][][]grid.Cell
	table  Table
}

// New builds a Cube from an explicit layout and transition table. Each
// face is copied out of g at its anchor. The table may be partial; Resolve
// reports missing pairs.
// Returns ErrLayout if the size is not positive, two faces share an anchor,
// or an anchored block leaves the map or contains void.
// Complexity: O(6×size²).
func New(g *grid.Grid, l Layout, t Table) (*Cube, error) {
	if l.Size <= 0 {
		return nil, fmt.Errorf("%w: face size %d", ErrLayout, l.Size)
	}
	c := &Cube{layout: l, table: make(Table, len(t))}
	used := make(map[Anchor]Face, faceCount)
	for _, face := range Faces {
		a := l.Anchors[face]
		if prev, dup := used[a]; dup {
			return nil, fmt.Errorf("%w: %v and %v share block %v", ErrLayout, prev, face, a)
		}
		used[a] = face

		origin := l.Origin(face)
		cells := make([][]grid.Cell, l.Size)
		for r := range cells {
			cells[r] = make([]grid.Cell, l.Size)
			for col := range cells[r] {
				p := grid.Position{Row: origin.Row + r, Col: origin.Col + col}
				if !g.InBounds(p) || g.At(p) == grid.Void {
					return nil, fmt.Errorf("%w: %v at block %v is not fully on the map", ErrLayout, face, a)
				}
				cells[r][col] = g.At(p)
			}
		}
		c.faces[face] = cells
	}
	for e, tr := range t {
		c.table[e] = tr
	}
	return c, nil
}

// Size returns the edge length of every face.
func (c *Cube) Size() int { return c.layout.Size }

// Layout returns the face placement in the net.
func (c *Cube) Layout() Layout { return c.layout }

// Table returns a copy of the transition table.
func (c *Cube) Table() Table {
	t := make(Table, len(c.table))
	for e, tr := range c.table {
		t[e] = tr
	}
	return t
}

// Resolve returns the transition for leaving face f in direction d.
// Returns ErrUndefinedTransition if the table has no entry for the pair.
// Complexity: O(1).
func (c *Cube) Resolve(f Face, d grid.Direction) (Transition, error) {
	tr, ok := c.table[Edge{Face: f, Dir: d}]
	if !ok {
		return Transition{}, fmt.Errorf("%w: %v", ErrUndefinedTransition, Edge{Face: f, Dir: d})
	}
	return tr, nil
}

// InFace reports whether the face-local position p lies on a face.
func (c *Cube) InFace(p grid.Position) bool {
	return p.Row >= 0 && p.Row < c.layout.Size && p.Col >= 0 && p.Col < c.layout.Size
}

// Cell returns the content of face f at local position p.
// p must satisfy InFace; anything else panics.
func (c *Cube) Cell(f Face, p grid.Position) grid.Cell {
	return c.faces[f][p.Row][p.Col]
}

// FlatCoordinates projects a face-local position back onto the flat map.
func (c *Cube) FlatCoordinates(f Face, p grid.Position) grid.Position {
	o := c.layout.Origin(f)
	return grid.Position{Row: o.Row + p.Row, Col: o.Col + p.Col}
}

// Locate returns the face holding the flat position p and the local
// position on it. ok is false if p is not on any face.
func (c *Cube) Locate(p grid.Position) (f Face, local grid.Position, ok bool) {
	if p.Row < 0 || p.Col < 0 {
		return 0, grid.Position{}, false
	}
	s := c.layout.Size
	a := Anchor{Row: p.Row / s, Col: p.Col / s}
	for _, face := range Faces {
		if c.layout.Anchors[face] == a {
			return face, grid.Position{Row: p.Row % s, Col: p.Col % s}, true
		}
	}
	return 0, grid.Position{}, false
}
