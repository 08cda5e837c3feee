package lpcsc

import (
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// GonumSolver runs gonum's dense simplex on the expanded matrix. It needs no
// C library but only accepts problems with rows <= cols.
type GonumSolver struct {
	Tol float64
}

func (GonumSolver) Name() string { return "gonum" }

func (s GonumSolver) Solve(p *SparseProblem) (*Solution, error) {
	if p.rows > p.cols {
		return nil, errors.Wrapf(ErrShape, "gonum: %d rows > %d cols", p.rows, p.cols)
	}

	// lp.Simplex rejects all-zero columns. Such a variable sits at 0 unless
	// its cost is negative, in which case the problem is unbounded.
	sol := &Solution{Solver: s.Name()}
	kept := make([]int, 0, p.cols)
	for j := range p.cols {
		if columnIsZero(p, j) {
			if p.c[j] < 0 {
				sol.Status = Unbounded
				return sol, nil
			}
			continue
		}
		kept = append(kept, j)
	}
	if len(kept) < p.rows {
		return nil, errors.Wrapf(ErrShape, "gonum: %d rows > %d nonzero cols", p.rows, len(kept))
	}
	if p.rows == 0 {
		sol.Status = Optimal
		sol.X = make([]float64, p.cols)
		return sol, nil
	}

	dense := Expand(p)
	a := mat.NewDense(p.rows, len(kept), nil)
	c := make([]float64, len(kept))
	for k, j := range kept {
		a.SetCol(k, dense.RawRowView(j))
		c[k] = p.c[j]
	}

	start := time.Now()
	opt, x, err := lp.Simplex(c, a, p.B(), s.Tol, nil)
	sol.Elapsed = time.Since(start)

	switch {
	case err == nil:
		sol.Status = Optimal
		sol.Objective = opt
		sol.X = make([]float64, p.cols)
		for k, j := range kept {
			sol.X[j] = x[k]
		}
	case errors.Is(err, lp.ErrInfeasible):
		sol.Status = Infeasible
	case errors.Is(err, lp.ErrUnbounded):
		sol.Status = Unbounded
	default:
		return nil, errors.Wrap(err, "gonum simplex")
	}
	return sol, nil
}

func columnIsZero(p *SparseProblem, j int) bool {
	_, val := p.mergedColumn(j)
	for _, v := range val {
		if v != 0 {
			return false
		}
	}
	return true
}
