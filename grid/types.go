package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the map has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: map must have at least one row and one column")
	// ErrInvalidCell indicates a map character outside {' ', '.', '#'}.
	ErrInvalidCell = errors.New("grid: invalid cell character")
	// ErrNoStart indicates the first map row contains no open cell.
	ErrNoStart = errors.New("grid: no open cell in the first row")
)

// Cell is the content of a single map position.
type Cell byte

const (
	// Void is outside the playing surface.
	Void Cell = ' '
	// Open can be walked on.
	Open Cell = '.'
	// Wall blocks movement.
	Wall Cell = '#'
)

// ParseCell converts a map character to a Cell.
func ParseCell(c byte) (Cell, bool) {
	switch Cell(c) {
	case Void, Open, Wall:
		return Cell(c), true
	}
	return Void, false
}

// String returns the map character of c.
func (c Cell) String() string {
	return string(rune(c))
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
