package path

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidPath indicates the movement line could not be parsed.
var ErrInvalidPath = errors.New("path: invalid movement line")

// Turn is a quarter turn in place.
type Turn int

const (
	// NoTurn marks a forward instruction.
	NoTurn Turn = iota
	// Clockwise is written as 'R'.
	Clockwise
	// CounterClockwise is written as 'L'.
	CounterClockwise
)

func (t Turn) String() string {
	switch t {
	case Clockwise:
		return "R"
	case CounterClockwise:
		return "L"
	}
	return ""
}

// Instruction is either a forward run (Turn == NoTurn) of Steps cells,
// or a single turn.
type Instruction struct {
	Steps int
	Turn  Turn
}

// Forward returns an instruction to move up to n cells.
func Forward(n int) Instruction { return Instruction{Steps: n} }

// Rotate returns a turn instruction.
func Rotate(t Turn) Instruction { return Instruction{Turn: t} }

// IsTurn reports whether ins is a turn.
func (ins Instruction) IsTurn() bool { return ins.Turn != NoTurn }

func (ins Instruction) String() string {
	if ins.IsTurn() {
		return ins.Turn.String()
	}
	return strconv.Itoa(ins.Steps)
}

// Path is an ordered list of instructions, consumed left to right.
type Path []Instruction

// String renders p in the notes format.
func (p Path) String() string {
	var sb strings.Builder
	for _, ins := range p {
		sb.WriteString(ins.String())
	}
	return sb.String()
}

// Distance returns the total number of forward cells requested by p.
func (p Path) Distance() int {
	n := 0
	for _, ins := range p {
		n += ins.Steps
	}
	return n
}
