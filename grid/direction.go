package grid

// Direction is a heading on the map. The numeric values are the facing
// weights used by the password: Right=0, Down=1, Left=2, Up=3.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Directions lists all headings in clockwise order starting from Right.
var Directions = [4]Direction{Right, Down, Left, Up}

// deltas holds {dRow, dCol} per Direction.
var deltas = [4][2]int{
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
	Up:    {-1, 0},
}

// Clockwise returns d rotated a quarter turn clockwise.
func (d Direction) Clockwise() Direction {
	return (d + 1) & 3
}

// CounterClockwise returns d rotated a quarter turn counter-clockwise.
func (d Direction) CounterClockwise() Direction {
	return (d + 3) & 3
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// Weight is the facing value of d in the password formula.
func (d Direction) Weight() int {
	return int(d)
}

// Delta returns the row and column change of one step in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	v := deltas[d&3]
	return v[0], v[1]
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Right && d <= Up
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	}
	return "invalid"
}
