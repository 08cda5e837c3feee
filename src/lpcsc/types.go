// Package lpcsc reads linear programs stored as a compressed sparse column
// constraint matrix plus dense right-hand-side and cost vectors, and hands
// them to LP solvers.
//
// A problem describes
//
//	minimize  cᵀx
//	s.t.      Ax = b
//	          x ≥ 0
//
// The text format is a whitespace separated token stream of three blocks:
//
//	<name> csc <rows> <cols> <nnz>
//	<col_ptr[0]> ... <col_ptr[cols]>
//	<row_idx[0]> ... <row_idx[nnz-1]>
//	<values[0]> ... <values[nnz-1]>
//	<name> dense <rows>
//	<b[0]> ... <b[rows-1]>
//	<name> dense <cols>
//	<c[0]> ... <c[cols-1]>
package lpcsc

import (
	"fmt"
	"slices"
	"strings"
)

// SparseProblem is an equality-form LP whose constraint matrix is kept in
// CSC layout. Values are only obtainable through Parse, LoadProblem,
// NewSparseProblem or FromDense, all of which validate it, and it is never
// mutated afterwards.
type SparseProblem struct {
	rows, cols, nnz int

	colPtr []int
	rowIdx []int
	values []float64

	b []float64
	c []float64

	names [3]string
}

// NewSparseProblem validates the given arrays and wraps them in a
// SparseProblem. The slices are copied.
func NewSparseProblem(rows, cols int, colPtr, rowIdx []int, values, b, c []float64) (*SparseProblem, error) {
	p := &SparseProblem{
		rows:   rows,
		cols:   cols,
		nnz:    len(rowIdx),
		colPtr: slices.Clone(colPtr),
		rowIdx: slices.Clone(rowIdx),
		values: slices.Clone(values),
		b:      slices.Clone(b),
		c:      slices.Clone(c),
		names:  [3]string{"A", "b", "c"},
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SparseProblem) Rows() int { return p.rows }
func (p *SparseProblem) Cols() int { return p.cols }
func (p *SparseProblem) NNZ() int  { return p.nnz }

func (p *SparseProblem) ColPtr() []int     { return slices.Clone(p.colPtr) }
func (p *SparseProblem) RowIdx() []int     { return slices.Clone(p.rowIdx) }
func (p *SparseProblem) Values() []float64 { return slices.Clone(p.values) }
func (p *SparseProblem) B() []float64      { return slices.Clone(p.b) }
func (p *SparseProblem) C() []float64      { return slices.Clone(p.c) }

// Names returns the block names as they appeared in the input.
func (p *SparseProblem) Names() (matrix, rhs, cost string) {
	return p.names[0], p.names[1], p.names[2]
}

// Column returns copies of the row indices and values stored for column j.
// It panics if j is outside [0, Cols()).
func (p *SparseProblem) Column(j int) ([]int, []float64) {
	lo, hi := p.colPtr[j], p.colPtr[j+1]
	return slices.Clone(p.rowIdx[lo:hi]), slices.Clone(p.values[lo:hi])
}

// mergedColumn returns the entries of column j with repeated row indices
// collapsed, keeping the last value stored for each row. Order of first
// appearance is preserved.
func (p *SparseProblem) mergedColumn(j int) ([]int, []float64) {
	lo, hi := p.colPtr[j], p.colPtr[j+1]
	idx := make([]int, 0, hi-lo)
	val := make([]float64, 0, hi-lo)
	pos := make(map[int]int, hi-lo)
	for k := lo; k < hi; k++ {
		i := p.rowIdx[k]
		if at, ok := pos[i]; ok {
			val[at] = p.values[k]
			continue
		}
		pos[i] = len(idx)
		idx = append(idx, i)
		val = append(val, p.values[k])
	}
	return idx, val
}

// Duplicates counts stored entries that repeat a (row, col) pair already
// present earlier in the same column.
func (p *SparseProblem) Duplicates() int {
	dups := 0
	for j := range p.cols {
		idx, _ := p.mergedColumn(j)
		dups += p.colPtr[j+1] - p.colPtr[j] - len(idx)
	}
	return dups
}

func (p *SparseProblem) String() string {
	s := new(strings.Builder)
	s.WriteString(fmt.Sprintf("Matrix %s: %d x %d, %d nonzeros\n", p.names[0], p.rows, p.cols, p.nnz))
	for j := range p.cols {
		s.WriteString(fmt.Sprintf("Column %d, cost %g: ", j, p.c[j]))
		for k := p.colPtr[j]; k < p.colPtr[j+1]; k++ {
			s.WriteString(fmt.Sprintf("(%d, %g) ", p.rowIdx[k], p.values[k]))
		}
		s.WriteRune('\n')
	}
	s.WriteString(fmt.Sprintf("RHS %s: %v", p.names[1], p.b))
	return s.String()
}
