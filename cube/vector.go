package cube

import "github.com/katalvlaran/cubewalk/grid"

// vec3 is an integer 3D vector; frames only ever hold unit axis vectors.
type vec3 struct {
	X, Y, Z int
}

func (v vec3) neg() vec3 {
	return vec3{-v.X, -v.Y, -v.Z}
}

// frame orients a face in space.
type frame struct {
	right, down, normal vec3
}

// rootFrame is the orientation of the first face of the net.
var rootFrame = frame{
	right:  vec3{1, 0, 0},
	down:   vec3{0, 1, 0},
	normal: vec3{0, 0, 1},
}

// heading returns the 3D direction of local direction d.
func (f frame) heading(d grid.Direction) vec3 {
	switch d {
	case grid.Right:
		return f.right
	case grid.Down:
		return f.down
	case grid.Left:
		return f.right.neg()
	default:
		return f.down.neg()
	}
}

// along returns the axis of increasing along-edge coordinate for an edge
// crossed in direction d: rows for horizontal crossings, columns otherwise.
func (f frame) along(d grid.Direction) vec3 {
	if d.Horizontal() {
		return f.down
	}
	return f.right
}

// cross returns the frame of the neighbouring face reached by leaving
// through the edge in direction d. The new normal is the old heading and
// the axis that pointed along the heading now points into the cube.
func (f frame) cross(d grid.Direction) frame {
	switch d {
	case grid.Right:
		return frame{right: f.normal.neg(), down: f.down, normal: f.right}
	case grid.Left:
		return frame{right: f.normal, down: f.down, normal: f.right.neg()}
	case grid.Down:
		return frame{right: f.right, down: f.normal.neg(), normal: f.down}
	default:
		return frame{right: f.right, down: f.normal, normal: f.down.neg()}
	}
}

// label names the face with outward normal n, relative to the root frame.
func label(n vec3) (Face, bool) {
	switch n {
	case rootFrame.normal:
		return Top, true
	case rootFrame.down:
		return Front, true
	case rootFrame.normal.neg():
		return Bottom, true
	case rootFrame.down.neg():
		return Rear, true
	case rootFrame.right:
		return Right, true
	case rootFrame.right.neg():
		return Left, true
	}
	return 0, false
}
