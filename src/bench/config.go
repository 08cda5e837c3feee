package bench

import (
	"io"
	"log"

	"lp_benchmark/src/lpcsc"
)

type Config struct {
	// Solvers are back end names understood by lpcsc.SolverByName. With none,
	// files are only parsed and validated.
	Solvers []string
	// Extensions lists the file extensions treated as problem files.
	Extensions []string
	// Tolerance bounds the residual of a reported point and, when several
	// solvers run, the relative gap between their objectives.
	Tolerance float64
	// ShowDense logs the expanded matrix of problems with at most
	// denseShowLimit entries.
	ShowDense bool
	// Highs is applied to every HiGHS solve.
	Highs lpcsc.HighsOptions
	Log   *log.Logger
}

const denseShowLimit = 100

func DefaultConfig() Config {
	return Config{
		Solvers:    []string{"highs"},
		Extensions: []string{".txt", ".csc"},
		Tolerance:  1e-6,
		Highs:      lpcsc.DefaultHighsOptions(),
		Log:        log.New(io.Discard, "", 0),
	}
}

func (cfg *Config) logger() *log.Logger {
	if cfg.Log == nil {
		return log.New(io.Discard, "", 0)
	}
	return cfg.Log
}

// solver builds the named back end with the settings carried by cfg.
func (cfg *Config) solver(name string) (lpcsc.Solver, error) {
	s, err := lpcsc.SolverByName(name)
	if err != nil {
		return nil, err
	}
	if h, ok := s.(lpcsc.HighsSolver); ok {
		h.Options = cfg.Highs
		return h, nil
	}
	return s, nil
}
