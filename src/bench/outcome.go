package bench

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"

	"lp_benchmark/src/lpcsc"
)

type Stage string

const (
	StageParse   Stage = "parse"
	StageSolve   Stage = "solve"
	StageVerify  Stage = "verify"
	StageCompare Stage = "compare"
)

// Outcome is the result of processing one problem file. Err is nil on
// success; otherwise Stage tells where processing stopped.
type Outcome struct {
	Path      string
	Rows      int
	Cols      int
	NNZ       int
	Solutions []*lpcsc.Solution
	Stage     Stage
	Err       error
}

func (o *Outcome) Failed() bool {
	return o.Err != nil
}

func (o *Outcome) fail(stage Stage, err error) {
	o.Stage = stage
	o.Err = err
}

// SolveTime sums the time spent inside the solvers.
func (o *Outcome) SolveTime() time.Duration {
	var total time.Duration
	for _, sol := range o.Solutions {
		total += sol.Elapsed
	}
	return total
}

func (o *Outcome) String() string {
	if o.Failed() {
		return fmt.Sprintf("FAIL %s [%s]: %v", o.Path, o.Stage, o.Err)
	}
	s := new(strings.Builder)
	fmt.Fprintf(s, "ok   %s (%d x %d, %d nonzeros)", o.Path, o.Rows, o.Cols, o.NNZ)
	for _, sol := range o.Solutions {
		fmt.Fprintf(s, "; %v", sol)
	}
	return s.String()
}

// agree reports an error when two optimal objectives differ by more than tol
// relative to their magnitude.
func agree(solutions []*lpcsc.Solution, tol float64) error {
	for k := 1; k < len(solutions); k++ {
		a, b := solutions[0], solutions[k]
		scale := math.Max(1, math.Max(math.Abs(a.Objective), math.Abs(b.Objective)))
		if math.Abs(a.Objective-b.Objective) > tol*scale {
			return errors.Errorf("solvers disagree: %s objective %.10g, %s objective %.10g",
				a.Solver, a.Objective, b.Solver, b.Objective)
		}
	}
	return nil
}
