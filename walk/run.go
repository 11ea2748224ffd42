package walk

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/path"
)

// Run executes p on w, one instruction at a time, left to right.
// A turn rotates w; a forward run calls w.Step up to Steps times and stops
// at the first blocked step. Returns the first error from w.Step or from
// an OnStep hook.
func Run(w Walker, p path.Path, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	var res Result
	for i, ins := range p {
		if ins.IsTurn() {
			w.Turn(ins.Turn)
			res.Turns++
			continue
		}
		for taken := 0; taken < ins.Steps; taken++ {
			moved, err := w.Step()
			if err != nil {
				return res, fmt.Errorf("walk: instruction %d (%v): %w", i, ins, err)
			}
			if !moved {
				res.Blocked++
				o.Logger.Debug("forward run blocked", "instruction", i, "steps", ins.Steps, "taken", taken)
				o.OnBlocked(i, ins, taken)
				break
			}
			res.Steps++
			if err := o.OnStep(i); err != nil {
				return res, fmt.Errorf("walk: OnStep error at instruction %d: %w", i, err)
			}
		}
	}
	return res, nil
}
