package cube

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/grid"
)

// Fold builds a Cube from a flat net. The face size is derived from the
// number of non-void cells; the net is folded starting from its first block
// in reading order, which becomes Top.
// Returns ErrNotCubeNet for maps that are not a cube net, ErrOptionViolation
// for bad options, or the wrapped error of an OnFold hook.
func Fold(g *grid.Grid, opts ...Option) (*Cube, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	size, blocks, err := findBlocks(g)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("cube net detected", "face_size", size, "blocks", len(blocks))

	f := &folder{
		opts:   o,
		blocks: blocks,
		frames: make(map[Anchor]frame, faceCount),
	}
	if err := f.fold(); err != nil {
		return nil, err
	}
	layout, frames, err := f.label(size)
	if err != nil {
		return nil, err
	}
	table, err := deriveTable(frames)
	if err != nil {
		return nil, err
	}

	return New(g, layout, table)
}

// findBlocks returns the face size and the anchors of the face blocks in
// reading order. Every block of the size×size tiling must be either fully
// void or fully on the map.
func findBlocks(g *grid.Grid) (int, []Anchor, error) {
	area := g.Count(grid.Open) + g.Count(grid.Wall)
	size := isqrt(area / faceCount)
	if size == 0 || faceCount*size*size != area {
		return 0, nil, fmt.Errorf("%w: %d cells do not form six square faces", ErrNotCubeNet, area)
	}
	if g.Height()%size != 0 || g.Width()%size != 0 {
		return 0, nil, fmt.Errorf("%w: %dx%d map is not tiled by %dx%d faces",
			ErrNotCubeNet, g.Height(), g.Width(), size, size)
	}

	var blocks []Anchor
	for br := 0; br < g.Height()/size; br++ {
		for bc := 0; bc < g.Width()/size; bc++ {
			n := 0
			for r := 0; r < size; r++ {
				for c := 0; c < size; c++ {
					if g.At(grid.Position{Row: br*size + r, Col: bc*size + c}) != grid.Void {
						n++
					}
				}
			}
			switch n {
			case 0:
			case size * size:
				blocks = append(blocks, Anchor{Row: br, Col: bc})
			default:
				return 0, nil, fmt.Errorf("%w: block %v is partially void", ErrNotCubeNet, Anchor{Row: br, Col: bc})
			}
		}
	}
	// With the area check above, full blocks always number six.
	return size, blocks, nil
}

// isqrt returns the integer square root of n.
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// foldItem pairs a block with its distance from the first block.
type foldItem struct {
	at    Anchor
	depth int
}

// folder encapsulates mutable fold state.
type folder struct {
	opts   FoldOptions
	blocks []Anchor
	frames map[Anchor]frame
	order  []foldItem
	queue  []foldItem
}

// fold assigns a frame to every block reachable from the first one.
func (f *folder) fold() error {
	present := make(map[Anchor]bool, len(f.blocks))
	for _, a := range f.blocks {
		present[a] = true
	}

	root := f.blocks[0]
	f.frames[root] = rootFrame
	f.queue = append(f.queue, foldItem{at: root})
	for len(f.queue) > 0 {
		item := f.queue[0]
		f.queue = f.queue[1:]
		f.order = append(f.order, item)

		fr := f.frames[item.at]
		for _, d := range grid.Directions {
			dr, dc := d.Delta()
			next := Anchor{Row: item.at.Row + dr, Col: item.at.Col + dc}
			if !present[next] {
				continue
			}
			if _, seen := f.frames[next]; seen {
				continue
			}
			f.frames[next] = fr.cross(d)
			f.queue = append(f.queue, foldItem{at: next, depth: item.depth + 1})
		}
	}
	if len(f.frames) != len(f.blocks) {
		return fmt.Errorf("%w: net is not connected (%d of %d faces reachable)",
			ErrNotCubeNet, len(f.frames), len(f.blocks))
	}
	return nil
}

// label names every folded block by its normal, runs the OnFold hook in
// traversal order, and returns the layout with the per-face frames.
func (f *folder) label(size int) (Layout, [faceCount]frame, error) {
	layout := Layout{Size: size}
	var frames [faceCount]frame
	var seen [faceCount]bool

	for _, item := range f.order {
		fr := f.frames[item.at]
		face, ok := label(fr.normal)
		if !ok || seen[face] {
			return Layout{}, frames, fmt.Errorf("%w: block %v folds onto an occupied side", ErrNotCubeNet, item.at)
		}
		seen[face] = true
		layout.Anchors[face] = item.at
		frames[face] = fr

		f.opts.Logger.Debug("face folded", "face", face.String(), "block_row", item.at.Row, "block_col", item.at.Col, "depth", item.depth)
		if err := f.opts.OnFold(face, item.at, item.depth); err != nil {
			return Layout{}, frames, fmt.Errorf("cube: OnFold error at %v: %w", face, err)
		}
	}
	return layout, frames, nil
}

// deriveTable computes the transition of every edge from the face frames.
func deriveTable(frames [faceCount]frame) (Table, error) {
	byNormal := make(map[vec3]Face, faceCount)
	for _, face := range Faces {
		byNormal[frames[face].normal] = face
	}

	t := make(Table, faceCount*len(grid.Directions))
	for _, from := range Faces {
		src := frames[from]
		for _, d := range grid.Directions {
			to, ok := byNormal[src.heading(d)]
			if !ok {
				return nil, fmt.Errorf("%w: no face beyond %v", ErrNotCubeNet, Edge{from, d})
			}
			dst := frames[to]
			inward := src.normal.neg()
			entered := false
			for _, nd := range grid.Directions {
				if dst.heading(nd) != inward {
					continue
				}
				t[Edge{Face: from, Dir: d}] = Transition{
					To:   to,
					Dir:  nd,
					Flip: dst.along(nd) != src.along(d),
				}
				entered = true
			}
			if !entered {
				return nil, fmt.Errorf("%w: no entry heading across %v", ErrNotCubeNet, Edge{from, d})
			}
		}
	}
	return t, nil
}
