// Package path parses the movement line of the puzzle notes, such as
// "10R5L5R10L4R5L5", into an ordered list of instructions.
//
// A run of decimal digits is one forward instruction (move up to N cells);
// the letters R and L are quarter turns clockwise and counter-clockwise.
// Turns may follow each other directly and the line may start or end with a
// turn. Whitespace at either end of the line is ignored; anywhere else it is
// an invalid character.
//
// The grammar is declared with participle struct tags:
//
//	Path  = Token* .
//	Token = Int | Turn .
//	Int   = /[0-9]+/ .
//	Turn  = /[LR]/ .
//
// Errors:
//
//   - ErrInvalidPath: an unknown character or a run-length that does not fit in an int.
package path
