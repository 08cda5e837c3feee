package lpcsc

import (
	"bufio"
	"io"
	"strconv"
)

// WriteProblem writes p in the text format read by Parse. Floats are written
// in the shortest form that parses back to the same value.
func WriteProblem(w io.Writer, p *SparseProblem) error {
	bw := bufio.NewWriter(w)

	header := func(name, tag string, dims ...int) {
		bw.WriteString(name)
		bw.WriteByte(' ')
		bw.WriteString(tag)
		for _, d := range dims {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(d))
		}
		bw.WriteByte('\n')
	}
	ints := func(vs []int) {
		for k, v := range vs {
			if k > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	floats := func(vs []float64) {
		for k, v := range vs {
			if k > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	matrix, rhs, cost := p.Names()
	header(matrix, "csc", p.rows, p.cols, p.nnz)
	ints(p.colPtr)
	ints(p.rowIdx)
	floats(p.values)
	header(rhs, "dense", p.rows)
	floats(p.b)
	header(cost, "dense", p.cols)
	floats(p.c)

	return bw.Flush()
}
