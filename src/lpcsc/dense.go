package lpcsc

import (
	"gonum.org/v1/gonum/mat"
)

// Expand scatters the constraint matrix into a dense cols × rows matrix, so
// that d.At(j, i) is the coefficient of column j in row i. A later entry for
// a repeated (row, col) pair overwrites an earlier one.
//
// gonum cannot represent a matrix with a zero dimension, so a problem with no
// rows or no columns expands to an empty *mat.Dense.
func Expand(p *SparseProblem) *mat.Dense {
	if p.rows == 0 || p.cols == 0 {
		return new(mat.Dense)
	}
	dense := mat.NewDense(p.cols, p.rows, nil)
	for j := range p.cols {
		for k := p.colPtr[j]; k < p.colPtr[j+1]; k++ {
			dense.Set(j, p.rowIdx[k], p.values[k])
		}
	}
	return dense
}

// FromDense compresses a cols × rows dense matrix, laid out as Expand
// produces it, into a SparseProblem. Zero coefficients are dropped.
func FromDense(d mat.Matrix, b, c []float64) (*SparseProblem, error) {
	cols, rows := d.Dims()
	if e, ok := d.(*mat.Dense); ok && e.IsEmpty() {
		cols, rows = len(c), len(b)
	}

	colPtr := make([]int, 1, cols+1)
	var rowIdx []int
	var values []float64
	if rows > 0 {
		for j := range cols {
			for i := range rows {
				if v := d.At(j, i); v != 0 {
					rowIdx = append(rowIdx, i)
					values = append(values, v)
				}
			}
			colPtr = append(colPtr, len(rowIdx))
		}
	} else {
		colPtr = append(colPtr, make([]int, cols)...)
	}
	return NewSparseProblem(rows, cols, colPtr, rowIdx, values, b, c)
}
