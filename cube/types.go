package cube

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/cubewalk/grid"
)

// Sentinel errors for cube construction and lookup.
var (
	// ErrNotCubeNet indicates the map cannot be folded into a cube.
	ErrNotCubeNet = errors.New("cube: map is not a net of six equal square faces")
	// ErrLayout indicates an explicit Layout does not match the map.
	ErrLayout = errors.New("cube: layout does not fit the map")
	// ErrUndefinedTransition indicates a (face, direction) pair with no transition.
	ErrUndefinedTransition = errors.New("cube: undefined face transition")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cube: invalid option supplied")
)

// Face labels one side of the cube.
type Face int

const (
	Top Face = iota
	Front
	Bottom
	Rear
	Right
	Left
)

// faceCount is the number of sides of a cube.
const faceCount = 6

// Faces lists all faces in label order.
var Faces = [faceCount]Face{Top, Front, Bottom, Rear, Right, Left}

// Valid reports whether f is one of the six labels.
func (f Face) Valid() bool {
	return f >= Top && f <= Left
}

func (f Face) String() string {
	switch f {
	case Top:
		return "Top"
	case Front:
		return "Front"
	case Bottom:
		return "Bottom"
	case Rear:
		return "Rear"
	case Right:
		return "Right"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// Anchor is the block row and block column a face occupies in the net.
// The face's top-left flat cell is (Row*size, Col*size).
type Anchor struct {
	Row, Col int
}

// Layout places the six faces of a cube in the net.
type Layout struct {
	// Size is the edge length of every face.
	Size int
	// Anchors is indexed by Face.
	Anchors [faceCount]Anchor
}

// Origin returns the flat position of the top-left cell of face f.
func (l Layout) Origin(f Face) grid.Position {
	a := l.Anchors[f]
	return grid.Position{Row: a.Row * l.Size, Col: a.Col * l.Size}
}

// Edge identifies a side of a face by the direction that leaves through it.
type Edge struct {
	Face Face
	Dir  grid.Direction
}

func (e Edge) String() string {
	return fmt.Sprintf("%v/%v", e.Face, e.Dir)
}

// Transition describes crossing an edge: the destination face, the heading
// on the destination face, and whether the along-edge coordinate is reversed.
type Transition struct {
	To   Face
	Dir  grid.Direction
	Flip bool
}

// Remap maps pos, the last cell on the current face when leaving in
// direction exit, to the first cell on the destination face.
// The along-edge coordinate (row for horizontal exits, column for vertical
// ones) is kept, or mirrored when Flip is set, and placed on the entry edge
// selected by Dir.
func (t Transition) Remap(pos grid.Position, exit grid.Direction, size int) grid.Position {
	k := pos.Col
	if exit.Horizontal() {
		k = pos.Row
	}
	if t.Flip {
		k = size - 1 - k
	}
	switch t.Dir {
	case grid.Right:
		return grid.Position{Row: k, Col: 0}
	case grid.Left:
		return grid.Position{Row: k, Col: size - 1}
	case grid.Down:
		return grid.Position{Row: 0, Col: k}
	default:
		return grid.Position{Row: size - 1, Col: k}
	}
}

// Table maps every edge to its transition.
type Table map[Edge]Transition

// Option configures Fold via functional arguments.
type Option func(*FoldOptions)

// FoldOptions holds hooks and the logger used by Fold.
type FoldOptions struct {
	// OnFold is called once per face in traversal order, with the face label,
	// its anchor and its distance (in face crossings) from the first face.
	// Returning an error aborts Fold.
	OnFold func(f Face, a Anchor, depth int) error

	// Logger receives Debug records about the fold.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns FoldOptions with a no-op hook and slog.Default().
func DefaultOptions() FoldOptions {
	return FoldOptions{
		OnFold: func(Face, Anchor, int) error { return nil },
		Logger: slog.Default(),
	}
}

// WithOnFold sets the per-face hook.
func WithOnFold(fn func(f Face, a Anchor, depth int) error) Option {
	return func(o *FoldOptions) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnFold hook", ErrOptionViolation)
			return
		}
		o.OnFold = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *FoldOptions) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}
