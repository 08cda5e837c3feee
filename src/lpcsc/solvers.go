package lpcsc

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Status int

const (
	NotSolved Status = iota
	Optimal
	Infeasible
	Unbounded
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	default:
		return "NotSolved"
	}
}

// Solution is what a solver reports for min cᵀx, Ax = b, x ≥ 0.
// Elapsed covers the solve call only, not model construction.
type Solution struct {
	Solver    string
	Status    Status
	Objective float64
	X         []float64
	Elapsed   time.Duration
}

func (sol *Solution) IsOptimal() bool {
	return sol.Status == Optimal
}

func (sol *Solution) String() string {
	s := new(strings.Builder)
	fmt.Fprintf(s, "%s: %v", sol.Solver, sol.Status)
	if sol.IsOptimal() {
		fmt.Fprintf(s, ", objective %.10g", sol.Objective)
	}
	fmt.Fprintf(s, " (%v)", sol.Elapsed)
	return s.String()
}

// Solver hands a validated problem to an LP back end.
type Solver interface {
	Name() string
	Solve(p *SparseProblem) (*Solution, error)
}

var registry = map[string]func() Solver{
	"highs":   func() Solver { return HighsSolver{} },
	"lpsolve": func() Solver { return LpSolveSolver{} },
	"gonum":   func() Solver { return GonumSolver{} },
}

// SolverByName returns the registered back end called name.
func SolverByName(name string) (Solver, error) {
	newSolver, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSolver, "%q (have %s)", name, strings.Join(Solvers(), ", "))
	}
	return newSolver(), nil
}

// Solvers lists the registered back end names in sorted order.
func Solvers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
