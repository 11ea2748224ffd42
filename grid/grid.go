package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable map of cells with a one-cell Void border.
// cells[r+1][c+1] holds the cell at public Position{r, c}.
type Grid struct {
	width, height int
	cells         [][]Cell
}

// New builds a Grid from map lines. The width is the longest line; shorter
// lines are padded with Void. Trailing carriage returns are ignored.
// Returns ErrEmptyGrid if there are no lines or every line is empty,
// ErrInvalidCell (wrapped with the offending row and column) for a
// character outside {' ', '.', '#'}.
// Complexity: O(W×H) time and memory.
func New(lines []string) (*Grid, error) {
	h, w := len(lines), 0
	for _, line := range lines {
		w = max(w, len(strings.TrimRight(line, "\r")))
	}
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	// Border rows and columns stay Void.
	cells := make([][]Cell, h+2)
	for r := range cells {
		row := make([]Cell, w+2)
		for c := range row {
			row[c] = Void
		}
		cells[r] = row
	}
	for r, line := range lines {
		line = strings.TrimRight(line, "\r")
		for c := 0; c < len(line); c++ {
			cell, ok := ParseCell(line[c])
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrInvalidCell, line[c], r, c)
			}
			cells[r+1][c+1] = cell
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns, excluding the border.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows, excluding the border.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside the map, excluding the border.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell at p. Positions on the border read as Void.
// Positions beyond the border panic.
// Complexity: O(1).
func (g *Grid) At(p Position) Cell {
	if p.Row < -1 || p.Row > g.height || p.Col < -1 || p.Col > g.width {
		panic(fmt.Sprintf("grid: position %v beyond the void border of a %dx%d map", p, g.height, g.width))
	}
	return g.cells[p.Row+1][p.Col+1]
}

// Start returns the left-most open cell of the first row.
func (g *Grid) Start() (Position, error) {
	for c := 0; c < g.width; c++ {
		if g.cells[1][c+1] == Open {
			return Position{Row: 0, Col: c}, nil
		}
	}
	return Position{}, ErrNoStart
}

// Count returns how many cells of the map, excluding the border, equal kind.
// Complexity: O(W×H).
func (g *Grid) Count(kind Cell) int {
	n := 0
	for r := 1; r <= g.height; r++ {
		for c := 1; c <= g.width; c++ {
			if g.cells[r][c] == kind {
				n++
			}
		}
	}
	return n
}

// String renders the map without the border, trailing void trimmed per row.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 1; r <= g.height; r++ {
		row := make([]byte, g.width)
		for c := 1; c <= g.width; c++ {
			row[c-1] = byte(g.cells[r][c])
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
