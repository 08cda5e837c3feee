package lpcsc

import "slices"

// RowView is the constraint matrix in compressed sparse row layout. Repeated
// (row, col) pairs are merged the same way Expand merges them.
type RowView struct {
	RowPtr []int
	ColIdx []int
	Values []float64
}

// Row returns the column indices and values of row i. The slices alias the
// view.
func (rv *RowView) Row(i int) ([]int, []float64) {
	lo, hi := rv.RowPtr[i], rv.RowPtr[i+1]
	return rv.ColIdx[lo:hi], rv.Values[lo:hi]
}

// RowView transposes the CSC storage. Within a row, column indices are
// ascending.
func (p *SparseProblem) RowView() *RowView {
	merged := make([][]int, p.cols)
	mergedVals := make([][]float64, p.cols)
	counts := make([]int, p.rows+1)
	for j := range p.cols {
		merged[j], mergedVals[j] = p.mergedColumn(j)
		for _, i := range merged[j] {
			counts[i+1]++
		}
	}
	for i := range p.rows {
		counts[i+1] += counts[i]
	}

	rv := &RowView{
		RowPtr: slices.Clone(counts),
		ColIdx: make([]int, counts[p.rows]),
		Values: make([]float64, counts[p.rows]),
	}
	next := counts[:p.rows]
	for j := range p.cols {
		for k, i := range merged[j] {
			rv.ColIdx[next[i]] = j
			rv.Values[next[i]] = mergedVals[j][k]
			next[i]++
		}
	}
	return rv
}

// MulVec returns Ax computed from the CSC arrays. Repeated entries are
// applied once, with their last value. It panics if len(x) != Cols().
func (p *SparseProblem) MulVec(x []float64) []float64 {
	if len(x) != p.cols {
		panic("lpcsc: MulVec length mismatch")
	}
	ax := make([]float64, p.rows)
	for j := range p.cols {
		if x[j] == 0 {
			continue
		}
		idx, val := p.mergedColumn(j)
		for k, i := range idx {
			ax[i] += val[k] * x[j]
		}
	}
	return ax
}
