// Package grid models the flat map of a monkey-map puzzle: a rectangular
// 2D array of cells surrounded by a one-cell void border.
//
// What:
//
//   - Grid holds Open ('.'), Wall ('#') and Void (' ') cells, built from the
//     map lines of the puzzle notes. Short lines are padded with Void.
//   - A Void border is added on all four sides, so any walker standing on a
//     non-void cell can look one step in every direction without a bounds check.
//   - Position and Direction are the shared vocabulary of every walker:
//     rows grow downwards, columns grow to the right.
//
// Why:
//
//   - Wraparound rules only need to ask "is the next cell void?"; the border
//     makes that question always answerable.
//   - The Grid is immutable once built and can be shared by any number of walkers.
//
// Coordinates:
//
//   - Public coordinates are 0-based and do not include the border.
//   - Row -1, row Height(), column -1 and column Width() address the border.
//   - Reading beyond the border is a programming error and panics.
//
// Complexity:
//
//   - New:      O(W×H) time and memory.
//   - At:       O(1).
//   - Start:    O(W).
//
// Errors:
//
//   - ErrEmptyGrid:   no map lines, or only empty lines.
//   - ErrInvalidCell: a character outside {' ', '.', '#'}.
//   - ErrNoStart:     the first row has no open cell.
package grid
