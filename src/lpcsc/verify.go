package lpcsc

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Residual measures how far a point is from satisfying Ax = b, x ≥ 0.
type Residual struct {
	// MaxViolation is ‖Ax − b‖∞.
	MaxViolation float64
	// MinX is the most negative component of x, or 0 when x ≥ 0.
	MinX float64
}

func (r Residual) Within(tol float64) bool {
	return r.MaxViolation <= tol && r.MinX >= -tol
}

// Verify checks a solver's primal point against p.
func Verify(p *SparseProblem, x []float64) (Residual, error) {
	if len(x) != p.cols {
		return Residual{}, errors.Errorf("verify: point has %d components, problem has %d columns", len(x), p.cols)
	}
	var r Residual
	if p.rows > 0 {
		diff := p.MulVec(x)
		floats.Sub(diff, p.b)
		r.MaxViolation = floats.Norm(diff, math.Inf(1))
	}
	if len(x) > 0 {
		r.MinX = math.Min(0, floats.Min(x))
	}
	return r, nil
}
