package lpcsc_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"lp_benchmark/src/lpcsc"
)

func TestExpand_Example(t *testing.T) {
	p, err := lpcsc.Parse(strings.NewReader(example))
	require.NoError(t, err)

	dense := lpcsc.Expand(p)
	r, c := dense.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.Equal(t, []float64{3, 0, 0, 4}, dense.RawMatrix().Data)
}

func TestExpand_ColumnMajorShape(t *testing.T) {
	// A = [[1 0 2],
	//      [0 5 0]]
	p, err := lpcsc.NewSparseProblem(2, 3,
		[]int{0, 1, 2, 3}, []int{0, 1, 0}, []float64{1, 5, 2},
		[]float64{1, 1}, []float64{1, 1, 1})
	require.NoError(t, err)

	dense := lpcsc.Expand(p)
	r, c := dense.Dims()
	require.Equal(t, 3, r, "one dense row per column of A")
	require.Equal(t, 2, c)
	assert.Equal(t, 2.0, dense.At(2, 0))
	assert.Equal(t, 5.0, dense.At(1, 1))
	assert.Equal(t, 0.0, dense.At(0, 1))

	want := mat.NewDense(2, 3, []float64{1, 0, 2, 0, 5, 0})
	assert.True(t, mat.Equal(want, dense.T()))
}

func TestExpand_DuplicatesLastWriteWins(t *testing.T) {
	p, err := lpcsc.NewSparseProblem(2, 1,
		[]int{0, 3}, []int{0, 1, 0}, []float64{7, 2, 9},
		[]float64{1, 1}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Duplicates())

	dense := lpcsc.Expand(p)
	assert.Equal(t, 9.0, dense.At(0, 0))
	assert.Equal(t, 2.0, dense.At(0, 1))

	// The input keeps every stored entry.
	assert.Equal(t, []float64{7, 2, 9}, p.Values())
}

func TestExpand_Empty(t *testing.T) {
	p, err := lpcsc.NewSparseProblem(0, 3, []int{0, 0, 0, 0}, nil, nil, nil, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, lpcsc.Expand(p).IsEmpty())
}

func TestFromDense_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := range 20 {
		rows, cols := 1+rng.Intn(6), 1+rng.Intn(6)
		d := mat.NewDense(cols, rows, nil)
		for j := range cols {
			for i := range rows {
				if rng.Float64() < 0.4 {
					d.Set(j, i, rng.NormFloat64())
				}
			}
		}
		b := make([]float64, rows)
		c := make([]float64, cols)

		p, err := lpcsc.FromDense(d, b, c)
		require.NoError(t, err, "trial %d", trial)

		colPtr := p.ColPtr()
		require.Len(t, colPtr, cols+1)
		require.Equal(t, 0, colPtr[0])
		require.Equal(t, p.NNZ(), colPtr[cols])
		for j := range cols {
			require.LessOrEqual(t, colPtr[j], colPtr[j+1])
		}
		for _, i := range p.RowIdx() {
			require.True(t, i >= 0 && i < rows)
		}

		back := lpcsc.Expand(p)
		require.True(t, mat.Equal(d, back), "trial %d", trial)

		again, err := lpcsc.FromDense(back, b, c)
		require.NoError(t, err)
		assert.Equal(t, p.ColPtr(), again.ColPtr())
		assert.Equal(t, p.RowIdx(), again.RowIdx())
		assert.Equal(t, p.Values(), again.Values())
	}
}

func TestFromDense_DropsZeros(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{0, 1, 0, 0})
	p, err := lpcsc.FromDense(d, []float64{0, 1}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, p.NNZ())
	assert.Equal(t, []int{0, 1, 1}, p.ColPtr())
	assert.Equal(t, []int{1}, p.RowIdx())
}
