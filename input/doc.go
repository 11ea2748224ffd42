// Package input reads puzzle notes: a block of map lines, one blank line,
// and a single movement line.
//
//	        ...#
//	        .#..
//	...#.......#
//	        ...#....
//
//	10R5L5R10L4R5L5
//
// Parse splits the notes, builds the *grid.Grid from the map block and the
// path.Path from the movement line. Demo returns the built-in example notes
// with six 4×4 faces.
//
// Errors:
//
//   - ErrNoSeparator:  no blank line between the map and the movement line.
//   - ErrNoPath:       nothing follows the blank line.
//   - ErrTrailingData: more than one non-empty line follows the blank line.
//   - wrapped grid.ErrEmptyGrid, grid.ErrInvalidCell and path.ErrInvalidPath.
package input
