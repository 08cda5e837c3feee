// Package bench runs LP solvers over problem files and summarizes the
// outcomes. A failing file is recorded and never stops the run.
package bench

import (
	"os"
	"path/filepath"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"lp_benchmark/src/lpcsc"
)

// Run processes path, which is either a single problem file or a directory
// whose regular files are processed in name order. Only an unusable path or
// configuration makes Run return an error.
func Run(path string, cfg Config) (*Summary, error) {
	logger := cfg.logger()
	for _, name := range cfg.Solvers {
		if _, err := lpcsc.SolverByName(name); err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "path is not a valid file or directory: %s", path)
	}

	var pending fileQueue
	switch {
	case info.IsDir():
		logger.Println("Path is a directory, iterating...")
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, errors.Wrapf(err, "error while processing path %s", path)
		}
		for _, e := range entries {
			file := filepath.Join(path, e.Name())
			if fi, err := os.Stat(file); err == nil && fi.Mode().IsRegular() {
				pending.push(file, fi)
			}
		}
	case info.Mode().IsRegular():
		logger.Println("Path is a single file, processing...")
		pending.push(path, info)
	default:
		return nil, errors.Errorf("path is not a valid file or directory: %s", path)
	}

	logger.Printf("%d files queued", pending.pending())

	exts := mapset.NewSet(cfg.Extensions...)
	summary := new(Summary)
	for f, ok := pending.pop(); ok; f, ok = pending.pop() {
		if !exts.Contains(filepath.Ext(f.path)) {
			logger.Println("Skipping non-problem file:", f.path)
			summary.Skipped++
			continue
		}
		logger.Printf("Processing %s (%d bytes)", f.path, f.size)
		o := ProcessFile(f.path, cfg)
		logger.Println(o.String())
		summary.add(o)
	}
	return summary, nil
}

// ProcessFile parses one file and runs every configured solver on it.
// Solver names are assumed to be valid.
func ProcessFile(path string, cfg Config) Outcome {
	logger := cfg.logger()
	o := Outcome{Path: path}

	p, err := lpcsc.LoadProblem(path)
	if err != nil {
		o.fail(StageParse, err)
		return o
	}
	o.Rows, o.Cols, o.NNZ = p.Rows(), p.Cols(), p.NNZ()
	logger.Printf("Reading problem: %s (%d x %d, %d nonzeros)", path, o.Rows, o.Cols, o.NNZ)

	if cfg.ShowDense && o.Rows > 0 && o.Cols > 0 && o.Rows*o.Cols <= denseShowLimit {
		a := lpcsc.Expand(p).T()
		logger.Printf("A =\n%v", mat.Formatted(a, mat.Squeeze()))
	}

	for _, name := range cfg.Solvers {
		solver, err := cfg.solver(name)
		if err != nil {
			o.fail(StageSolve, err)
			return o
		}
		sol, err := solver.Solve(p)
		if err != nil {
			o.fail(StageSolve, errors.Wrapf(err, "solve with %s", name))
			return o
		}
		o.Solutions = append(o.Solutions, sol)
		if !sol.IsOptimal() {
			o.fail(StageSolve, errors.Errorf("%s did not reach optimality: %v", name, sol.Status))
			return o
		}

		res, err := lpcsc.Verify(p, sol.X)
		if err != nil {
			o.fail(StageVerify, errors.Wrap(err, name))
			return o
		}
		if !res.Within(cfg.Tolerance) {
			o.fail(StageVerify, errors.Errorf("%s point violates constraints: |Ax-b| = %g, min x = %g",
				name, res.MaxViolation, res.MinX))
			return o
		}
	}

	if err := agree(o.Solutions, cfg.Tolerance); err != nil {
		o.fail(StageCompare, err)
	}
	return o
}
