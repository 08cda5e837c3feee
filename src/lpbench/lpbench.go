package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"lp_benchmark/src/bench"
	"lp_benchmark/src/lpcsc"
)

func main() {
	cfg := bench.DefaultConfig()
	var path string
	var top int

	flag.StringVar(&path, "path", "test", "A problem file or a directory of problem files")
	flag.Func("solvers", fmt.Sprintf("Comma-separated solvers to run (%s); empty only validates", strings.Join(lpcsc.Solvers(), ", ")), func(s string) error {
		cfg.Solvers = splitList(s)
		return nil
	})
	flag.Func("ext", "Comma-separated extensions of problem files", func(s string) error {
		cfg.Extensions = splitList(s)
		return nil
	})
	flag.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "Tolerance for residuals and objective agreement")
	flag.IntVar(&top, "top", 0, "Print the N slowest solves")
	flag.BoolVar(&cfg.ShowDense, "dense", false, "Print the dense matrix of small problems")
	flag.StringVar(&cfg.Highs.Method, "highs-method", cfg.Highs.Method, "HiGHS solver option: simplex, ipm or choose")
	flag.StringVar(&cfg.Highs.Presolve, "highs-presolve", cfg.Highs.Presolve, "HiGHS presolve option: off, on or choose")
	flag.IntVar(&cfg.Highs.Threads, "highs-threads", cfg.Highs.Threads, "HiGHS thread count")
	flag.BoolVar(&cfg.Highs.Console, "highs-log", cfg.Highs.Console, "Let HiGHS log to the console")

	flag.Parse()
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	log.SetFlags(0)
	cfg.Log = log.New(os.Stdout, "", 0)

	fmt.Println("Processing path:", path)
	fmt.Println("---------------------------------")

	summary, err := bench.Run(path, cfg)
	if err != nil {
		log.Fatalf("Fatal Error: %v", err)
	}

	summary.Print(os.Stdout)
	if top > 0 {
		fmt.Println("Slowest solves:")
		for _, o := range summary.Slowest(top) {
			fmt.Printf("%12v  %s\n", o.SolveTime(), o.Path)
		}
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
