package walk

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/cubewalk/path"
)

// Sentinel errors for walkers.
var (
	// ErrNotOpen indicates a walker was placed on a cell that is not open.
	ErrNotOpen = errors.New("walk: start is not an open cell")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// Walker is an agent that can turn in place and try one step forward.
// Step reports whether the walker moved; false means a wall blocked it.
type Walker interface {
	Turn(t path.Turn)
	Step() (bool, error)
}

// Result summarises a Run.
type Result struct {
	// Steps is the number of cells actually moved.
	Steps int
	// Turns is the number of turn instructions applied.
	Turns int
	// Blocked is the number of forward runs cut short by a wall.
	Blocked int
}

// Option configures Run via functional arguments.
type Option func(*RunOptions)

// RunOptions holds hooks and the logger used by Run.
type RunOptions struct {
	// OnStep is called after every successful step with the index of the
	// instruction being executed. Returning an error aborts Run.
	OnStep func(index int) error

	// OnBlocked is called when a forward run hits a wall, with the index of
	// the instruction and the number of steps it managed before the wall.
	OnBlocked func(index int, ins path.Instruction, taken int)

	// Logger receives Debug records about blocked runs.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns RunOptions with no-op hooks and slog.Default().
func DefaultOptions() RunOptions {
	return RunOptions{
		OnStep:    func(int) error { return nil },
		OnBlocked: func(int, path.Instruction, int) {},
		Logger:    slog.Default(),
	}
}

// WithOnStep sets the per-step hook.
func WithOnStep(fn func(index int) error) Option {
	return func(o *RunOptions) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnStep hook", ErrOptionViolation)
			return
		}
		o.OnStep = fn
	}
}

// WithOnBlocked sets the hook called when a wall stops a forward run.
func WithOnBlocked(fn func(index int, ins path.Instruction, taken int)) Option {
	return func(o *RunOptions) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnBlocked hook", ErrOptionViolation)
			return
		}
		o.OnBlocked = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *RunOptions) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}
