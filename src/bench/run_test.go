package bench_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lp_benchmark/src/bench"
	"lp_benchmark/src/lpcsc"
)

const (
	good      = "p csc 2 2 2\n0 1 2\n0 1\n3.0 4.0\nq dense 2\n1.0 1.0\nq dense 2\n2.0 2.0"
	malformed = "p csr 2 2 2\n0 1 2\n0 1\n3.0 4.0\nq dense 2\n1.0 1.0\nq dense 2\n2.0 2.0"
	truncated = "p csc 2 2 2\n0 1 2\n0 1\n3.0 4.0\nq dense 2\n1.0 1.0\nq dense 2\n2.0"
	// x0 + x1 = -1 with x ≥ 0.
	infeasible = "p csc 1 2 2\n0 1 2\n0 0\n1 1\nq dense 1\n-1\nq dense 2\n1 1"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func gonumConfig() bench.Config {
	cfg := bench.DefaultConfig()
	cfg.Solvers = []string{"gonum"}
	return cfg
}

func TestRun_OneGoodOneMalformed(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a_bad.csc":  malformed,
		"b_good.csc": good,
	})

	summary, err := bench.Run(dir, gonumConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Outcomes, 2)

	bad, ok := summary.Outcomes[0], summary.Outcomes[1]
	assert.True(t, bad.Failed())
	assert.Equal(t, bench.StageParse, bad.Stage)
	var fe *lpcsc.FormatError
	require.ErrorAs(t, bad.Err, &fe)

	assert.False(t, ok.Failed(), "%v", ok.Err)
	require.Len(t, ok.Solutions, 1)
	assert.InDelta(t, 7.0/6, ok.Solutions[0].Objective, 1e-9)
}

func TestRun_OverflowingHeaderDoesNotStopRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a_huge.csc": "p csc 1 9223372036854775807 0\n0\nq dense 1\n1\nq dense 1\n1",
		"b_good.csc": good,
	})

	summary, err := bench.Run(dir, gonumConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Outcomes, 2)

	var fe *lpcsc.FormatError
	require.ErrorAs(t, summary.Outcomes[0].Err, &fe)
	assert.False(t, summary.Outcomes[1].Failed(), "%v", summary.Outcomes[1].Err)
}

func TestRun_ParseOnly(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.txt":      good,
		"truncated.txt": truncated,
		"notes.md":      "not a problem",
	})
	cfg := bench.DefaultConfig()
	cfg.Solvers = nil

	summary, err := bench.Run(dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)

	for _, o := range summary.Outcomes {
		if strings.HasSuffix(o.Path, "truncated.txt") {
			var te *lpcsc.TruncatedInputError
			require.ErrorAs(t, o.Err, &te)
			assert.Equal(t, lpcsc.BlockCost, te.Block)
		} else {
			assert.False(t, o.Failed())
			assert.Empty(t, o.Solutions)
			assert.Equal(t, 2, o.NNZ)
		}
	}
}

func TestRun_SingleFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"only.csc": good})

	summary, err := bench.Run(filepath.Join(dir, "only.csc"), gonumConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Failed)
}

func TestRun_InfeasibleCountsAsFailure(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"infeasible.csc": infeasible,
		"good.csc":       good,
	})

	summary, err := bench.Run(dir, gonumConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
	for _, o := range summary.Outcomes {
		if o.Failed() {
			assert.Equal(t, bench.StageSolve, o.Stage)
			require.Len(t, o.Solutions, 1)
			assert.Equal(t, lpcsc.Infeasible, o.Solutions[0].Status)
		}
	}
}

func TestRun_CompareAgreeingSolvers(t *testing.T) {
	dir := writeFiles(t, map[string]string{"good.csc": good})
	cfg := gonumConfig()
	cfg.Solvers = []string{"gonum", "gonum"}

	summary, err := bench.Run(dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Failed)
	require.Len(t, summary.Outcomes[0].Solutions, 2)
}

func TestRun_BadPath(t *testing.T) {
	_, err := bench.Run(filepath.Join(t.TempDir(), "missing"), gonumConfig())
	require.Error(t, err)
}

func TestRun_UnknownSolver(t *testing.T) {
	dir := writeFiles(t, map[string]string{"good.csc": good})
	cfg := bench.DefaultConfig()
	cfg.Solvers = []string{"simplex9000"}

	_, err := bench.Run(dir, cfg)
	require.ErrorIs(t, err, lpcsc.ErrUnknownSolver)
}

func TestRun_Logs(t *testing.T) {
	dir := writeFiles(t, map[string]string{"good.csc": good, "skip.dat": good})
	var buf bytes.Buffer
	cfg := gonumConfig()
	cfg.Log = log.New(&buf, "", 0)
	cfg.ShowDense = true

	_, err := bench.Run(dir, cfg)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Path is a directory, iterating...")
	assert.Contains(t, out, "Skipping non-problem file:")
	assert.Contains(t, out, "2 files queued")
	assert.Contains(t, out, "Processing "+filepath.Join(dir, "good.csc"))
	assert.Contains(t, out, "Reading problem:")
	assert.Contains(t, out, "A =")
}

func TestSummary_Slowest(t *testing.T) {
	s := &bench.Summary{Outcomes: []bench.Outcome{
		{Path: "fast", Solutions: []*lpcsc.Solution{{Elapsed: time.Millisecond}}},
		{Path: "parse-error"},
		{Path: "slow", Solutions: []*lpcsc.Solution{{Elapsed: time.Second}}},
		{Path: "medium", Solutions: []*lpcsc.Solution{{Elapsed: 10 * time.Millisecond}, {Elapsed: 5 * time.Millisecond}}},
	}}

	slowest := s.Slowest(2)
	require.Len(t, slowest, 2)
	assert.Equal(t, "slow", slowest[0].Path)
	assert.Equal(t, "medium", slowest[1].Path)

	assert.Len(t, s.Slowest(10), 3)
	assert.Empty(t, s.Slowest(0))
	assert.Empty(t, s.Slowest(-1))
}

func TestSummary_Print(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.csc": malformed, "b.csc": good})
	summary, err := bench.Run(dir, gonumConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	summary.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Processed: 2 files")
	assert.Contains(t, out, "Failed:    1 files")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "a.csc")
}
