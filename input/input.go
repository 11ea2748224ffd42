package input

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/path"
)

// Sentinel errors for notes parsing.
var (
	// ErrNoSeparator indicates the map is not followed by a blank line.
	ErrNoSeparator = errors.New("input: missing blank line between map and path")
	// ErrNoPath indicates the blank line is not followed by a movement line.
	ErrNoPath = errors.New("input: missing movement line")
	// ErrTrailingData indicates more than one movement line.
	ErrTrailingData = errors.New("input: unexpected data after movement line")
)

//go:embed demo.txt
var demo string

// Notes is the parsed content of a puzzle input.
type Notes struct {
	// Grid is the padded map.
	Grid *grid.Grid
	// Path is the movement line.
	Path path.Path
	// Width is the longest map line, which sizes the grid.
	Width int
}

// Parse reads notes from r.
func Parse(r io.Reader) (*Notes, error) {
	var (
		mapLines []string
		pathLine string
		seenGap  bool
		seenPath bool
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case !seenGap && line == "":
			seenGap = true
		case !seenGap:
			mapLines = append(mapLines, line)
		case line == "":
			// blank lines around the movement line are tolerated
		case seenPath:
			return nil, fmt.Errorf("%w: %q", ErrTrailingData, line)
		default:
			pathLine, seenPath = line, true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read notes: %w", err)
	}
	if !seenGap {
		return nil, ErrNoSeparator
	}
	if !seenPath {
		return nil, ErrNoPath
	}

	g, err := grid.New(mapLines)
	if err != nil {
		return nil, fmt.Errorf("input: map: %w", err)
	}
	p, err := path.Parse(pathLine)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return &Notes{Grid: g, Path: p, Width: g.Width()}, nil
}

// ParseString reads notes from s.
func ParseString(s string) (*Notes, error) {
	return Parse(strings.NewReader(s))
}

// Load reads notes from the named file.
func Load(name string) (*Notes, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	n, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// Demo returns the built-in example notes: six 4×4 faces and the path
// "10R5L5R10L4R5L5".
func Demo() *Notes {
	n, err := ParseString(demo)
	if err != nil {
		panic(fmt.Sprintf("input: embedded demo notes: %v", err))
	}
	return n
}

// DemoText returns the raw built-in example notes.
func DemoText() string {
	return demo
}
