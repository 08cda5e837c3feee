package lpcsc

import "math"

func (p *SparseProblem) validate() error {
	return firstError(
		p.checkShape,
		p.checkColPtr,
		p.checkRowIdx,
		p.checkFinite,
	)
}

func (p *SparseProblem) checkShape() error {
	switch {
	case p.rows < 0 || p.cols < 0:
		return structuralf(BlockMatrix, "negative dimensions %d x %d", p.rows, p.cols)
	case len(p.colPtr) != p.cols+1:
		return structuralf(BlockMatrix, "col_ptr has %d entries, want %d", len(p.colPtr), p.cols+1)
	case len(p.rowIdx) != p.nnz:
		return structuralf(BlockMatrix, "row_idx has %d entries, want %d", len(p.rowIdx), p.nnz)
	case len(p.values) != p.nnz:
		return structuralf(BlockMatrix, "values has %d entries, want %d", len(p.values), p.nnz)
	case len(p.b) != p.rows:
		return structuralf(BlockRHS, "b has %d entries, want %d", len(p.b), p.rows)
	case len(p.c) != p.cols:
		return structuralf(BlockCost, "c has %d entries, want %d", len(p.c), p.cols)
	}
	return nil
}

func (p *SparseProblem) checkColPtr() error {
	if p.colPtr[0] != 0 {
		return structuralf(BlockMatrix, "col_ptr[0] = %d, want 0", p.colPtr[0])
	}
	for j := range p.cols {
		if p.colPtr[j] > p.colPtr[j+1] {
			return structuralf(BlockMatrix, "col_ptr decreases at column %d (%d > %d)", j, p.colPtr[j], p.colPtr[j+1])
		}
	}
	if p.colPtr[p.cols] != p.nnz {
		return structuralf(BlockMatrix, "col_ptr[%d] = %d, want nnz = %d", p.cols, p.colPtr[p.cols], p.nnz)
	}
	return nil
}

func (p *SparseProblem) checkRowIdx() error {
	for k, i := range p.rowIdx {
		if i < 0 || i >= p.rows {
			return structuralf(BlockMatrix, "row_idx[%d] = %d outside [0, %d)", k, i, p.rows)
		}
	}
	return nil
}

func (p *SparseProblem) checkFinite() error {
	for k, v := range p.values {
		if !isFinite(v) {
			return structuralf(BlockMatrix, "values[%d] is %v", k, v)
		}
	}
	for i, v := range p.b {
		if !isFinite(v) {
			return structuralf(BlockRHS, "b[%d] is %v", i, v)
		}
	}
	for j, v := range p.c {
		if !isFinite(v) {
			return structuralf(BlockCost, "c[%d] is %v", j, v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// firstError runs steps in order and stops at the first failure.
func firstError(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
