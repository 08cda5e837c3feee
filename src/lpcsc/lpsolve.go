package lpcsc

import (
	"time"

	"github.com/draffensperger/golp"
	"github.com/pkg/errors"
)

// LpSolveSolver feeds the problem to lp_solve one equality row at a time.
// lp_solve columns default to x ≥ 0.
type LpSolveSolver struct{}

func (LpSolveSolver) Name() string { return "lpsolve" }

func (s LpSolveSolver) Solve(p *SparseProblem) (*Solution, error) {
	lp := golp.NewLP(0, p.cols)
	lp.SetObjFn(p.C())

	rv := p.RowView()
	for i := range p.rows {
		cols, vals := rv.Row(i)
		entries := make([]golp.Entry, len(cols))
		for k, j := range cols {
			entries[k] = golp.Entry{Col: j, Val: vals[k]}
		}
		if err := lp.AddConstraintSparse(entries, golp.EQ, p.b[i]); err != nil {
			return nil, errors.Wrapf(err, "lpsolve: row %d", i)
		}
	}

	start := time.Now()
	res := lp.Solve()
	elapsed := time.Since(start)

	sol := &Solution{Solver: s.Name(), Elapsed: elapsed}
	switch res {
	case golp.OPTIMAL:
		sol.Status = Optimal
		sol.Objective = lp.Objective()
		sol.X = lp.Variables()
	case golp.INFEASIBLE:
		sol.Status = Infeasible
	case golp.UNBOUNDED:
		sol.Status = Unbounded
	}
	return sol, nil
}
