// Package walk moves an agent across a monkey map following a path.
//
// What:
//
//   - Flat walks the flat grid. Stepping into void wraps to the far end of
//     the same row or column: scan backwards from the current cell until the
//     next cell is void; the last non-void cell is the target.
//   - Surface walks the folded cube. Stepping off a face resolves the edge
//     transition and continues on the neighbouring face with a remapped
//     position and a new heading.
//   - Run drives any Walker through a path.Path: turns change the heading,
//     a forward run of N steps stops at the first wall and the rest of that
//     run is dropped.
//
// A step into a wall never changes the walker: position, heading and face
// stay as they were. Both walkers own their state; two walkers never share
// anything mutable, while the *grid.Grid and *cube.Cube they read are
// shared freely.
//
// Errors:
//
//   - ErrNotOpen:   a starting position that is not an open cell.
//   - cube.ErrUndefinedTransition, propagated from a hand-encoded table.
//   - Wrapped hook errors from WithOnStep.
package walk
