package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"lp_benchmark/src/lpcsc"
)

// GenerateProblem builds a feasible, bounded problem: b = A·x0 for a random
// x0 ≥ 0, and every cost is positive. Each row gets at least one nonzero so
// no constraint is trivially empty.
func GenerateProblem(rng *rand.Rand, numRows, numCols int, density float64) (*lpcsc.SparseProblem, error) {
	if numRows <= 0 || numCols <= 0 {
		return nil, errors.Errorf("rows and cols must be positive, got %d x %d", numRows, numCols)
	}
	a := mat.NewDense(numCols, numRows, nil)
	for j := range numCols {
		for i := range numRows {
			if rng.Float64() < density {
				a.Set(j, i, float64(1+rng.Intn(9)))
			}
		}
	}
	for i := range numRows {
		if mat.Sum(a.ColView(i)) == 0 {
			a.Set(rng.Intn(numCols), i, float64(1+rng.Intn(9)))
		}
	}

	x0 := mat.NewVecDense(numCols, nil)
	for j := range numCols {
		x0.SetVec(j, float64(rng.Intn(5)))
	}
	b := mat.NewVecDense(numRows, nil)
	b.MulVec(a.T(), x0)

	c := make([]float64, numCols)
	for j := range c {
		c[j] = float64(1 + rng.Intn(20))
	}
	return lpcsc.FromDense(a, b.RawVector().Data, c)
}

func main() {
	var outPath string
	var numRows, numCols int
	var density float64
	var seed int64

	flag.StringVar(&outPath, "out", "out.csc", "The output file")
	flag.IntVar(&numRows, "rows", 0, "The number of constraints")
	flag.IntVar(&numCols, "cols", 0, "The number of variables")
	flag.Float64Var(&density, "density", 0, "The probability of a coefficient being nonzero")
	flag.Int64Var(&seed, "seed", 1, "The random seed")

	flag.Parse()

	err := false
	if numRows == 0 {
		fmt.Fprintln(os.Stderr, "Must specify the number of rows")
		err = true
	}
	if numCols == 0 {
		fmt.Fprintln(os.Stderr, "Must specify the number of columns")
		err = true
	}
	if density <= 0 || density > 1 {
		fmt.Fprintln(os.Stderr, "Must specify a density in (0, 1]")
		err = true
	}

	if err {
		os.Exit(1)
	}

	p, genErr := GenerateProblem(rand.New(rand.NewSource(seed)), numRows, numCols, density)
	if genErr != nil {
		fmt.Fprintln(os.Stderr, genErr)
		os.Exit(1)
	}

	if writeErr := writeFile(outPath, p); writeErr != nil {
		fmt.Fprintln(os.Stderr, writeErr)
		os.Exit(1)
	}
}

func writeFile(path string, p *lpcsc.SparseProblem) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := lpcsc.WriteProblem(f, p); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}
