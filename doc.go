// Package cubewalk simulates an agent following a movement path over a
// "monkey map": a grid of open tiles, walls and void.
//
// What is cubewalk?
//
//	The same path is walked under two wraparound rules:
//	  - flat: leaving the map re-enters from the far side of the same row
//	    or column;
//	  - cube: the map is a net of six square faces folded into a cube, and
//	    leaving a face continues on the neighbouring face with position and
//	    heading carried across the fold.
//	Each final state is scored as a password.
//
// Packages:
//
//	grid/     cells, positions, directions and the padded immutable Grid
//	path/     participle grammar for instruction lines such as 10R5L5
//	input/    splits notes into map and path; embedded example notes
//	cube/     folds a net into a cube and derives all 24 edge transitions
//	walk/     flat and cube-surface walkers and the Run driver
//	password/ final score: 1000*row + 4*column + facing
//	config/   YAML configuration
//	cmd/cubewalk  CLI
//
// Quick start:
//
//	notes := input.Demo()
//	c, _ := cube.Fold(notes.Grid)
//	start, _ := notes.Grid.Start()
//	w, _ := walk.NewSurface(c, start)
//	walk.Run(w, notes.Path)
//	fmt.Println(password.Compute(w.FlatPosition(), w.Direction())) // 5031
package cubewalk
