package lpcsc

import (
	"math"
	"time"

	"github.com/lanl/highs"
	"github.com/pkg/errors"
)

// HighsOptions are the HiGHS settings applied before each timed solve.
type HighsOptions struct {
	Method   string // "simplex", "ipm" or "choose"
	Presolve string // "off", "on" or "choose"
	Threads  int
	Console  bool
}

// DefaultHighsOptions runs simplex without presolve on one thread with
// console logging off.
func DefaultHighsOptions() HighsOptions {
	return HighsOptions{Method: "simplex", Presolve: "off", Threads: 1}
}

func (o HighsOptions) apply(m *highs.RawModel) error {
	if err := m.SetStringOption("solver", o.Method); err != nil {
		return errors.Wrapf(err, "solver=%s", o.Method)
	}
	if err := m.SetStringOption("presolve", o.Presolve); err != nil {
		return errors.Wrapf(err, "presolve=%s", o.Presolve)
	}
	if err := m.SetIntOption("threads", o.Threads); err != nil {
		return errors.Wrapf(err, "threads=%d", o.Threads)
	}
	return errors.Wrap(m.SetBoolOption("log_to_console", o.Console), "log_to_console")
}

// HighsSolver runs HiGHS. A zero Options value means DefaultHighsOptions.
type HighsSolver struct {
	Options HighsOptions
}

func (HighsSolver) Name() string { return "highs" }

// Settings returns the options Solve will apply.
func (s HighsSolver) Settings() HighsOptions {
	if s.Options == (HighsOptions{}) {
		return DefaultHighsOptions()
	}
	return s.Options
}

func (s HighsSolver) Solve(p *SparseProblem) (*Solution, error) {
	lp, err := defStandardForm(p).ToRawModel()
	if err != nil {
		return nil, errors.Wrap(err, "highs")
	}
	if err := s.Settings().apply(lp); err != nil {
		return nil, errors.Wrap(err, "highs option")
	}

	start := time.Now()
	solution, err := lp.Solve()
	elapsed := time.Since(start)
	if err != nil {
		return nil, errors.Wrap(err, "highs")
	}

	sol := &Solution{
		Solver:  s.Name(),
		Status:  highsStatus(solution.Status),
		Elapsed: elapsed,
	}
	if sol.IsOptimal() {
		sol.Objective = solution.Objective
		sol.X = solution.ColumnPrimal[:p.cols]
	}
	return sol, nil
}

func highsStatus(s highs.ModelStatus) Status {
	switch s {
	case highs.Optimal:
		return Optimal
	case highs.Infeasible:
		return Infeasible
	case highs.Unbounded, highs.UnboundedOrInfeasible:
		return Unbounded
	default:
		return NotSolved
	}
}

// defStandardForm lowers p into a HiGHS model with every row fixed to b and
// every column in [0, +∞).
func defStandardForm(p *SparseProblem) *highs.Model {
	lp := new(highs.Model)
	lp.ColCosts = p.C()
	lp.ColLower = make([]float64, p.cols)
	lp.ColUpper = make([]float64, p.cols)
	for j := range p.cols {
		lp.ColUpper[j] = math.Inf(1)
	}
	lp.RowLower = p.B()
	lp.RowUpper = p.B()

	lp.ConstMatrix = make([]highs.Nonzero, 0, p.nnz)
	for j := range p.cols {
		idx, val := p.mergedColumn(j)
		for k, i := range idx {
			lp.ConstMatrix = append(lp.ConstMatrix, highs.Nonzero{Row: i, Col: j, Val: val[k]})
		}
	}
	return lp
}
