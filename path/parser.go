package path

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type pathGrammar struct {
	Tokens []*tokenGrammar `parser:"@@*"`
}

type tokenGrammar struct {
	Steps *int    `parser:"  @Int"`
	Turn  *string `parser:"| @Turn"`
}

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Turn", Pattern: `[LR]`},
})

var parser = participle.MustBuild[pathGrammar](
	participle.Lexer(pathLexer),
)

// Parse converts a movement line into a Path. Surrounding whitespace is
// ignored; whitespace between tokens is not.
// Returns ErrInvalidPath wrapping the parser error on malformed input.
func Parse(line string) (Path, error) {
	ast, err := parser.ParseString("path", strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	p := make(Path, 0, len(ast.Tokens))
	for _, tok := range ast.Tokens {
		switch {
		case tok.Steps != nil:
			p = append(p, Forward(*tok.Steps))
		case tok.Turn != nil && *tok.Turn == "R":
			p = append(p, Rotate(Clockwise))
		case tok.Turn != nil && *tok.Turn == "L":
			p = append(p, Rotate(CounterClockwise))
		default:
			return nil, fmt.Errorf("%w: empty token", ErrInvalidPath)
		}
	}
	return p, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(line string) Path {
	p, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return p
}
