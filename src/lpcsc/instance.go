package lpcsc

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const (
	maxTokenSize = 1 << 20
	// Declared counts come from untrusted headers, so slices grow from at
	// most this capacity instead of being sized up front.
	preallocLimit = 1 << 16
)

type parser struct {
	scanner *bufio.Scanner
	path    string
	block   string
	p       *SparseProblem
}

// Parse reads one problem from r. On failure no problem is returned and the
// error is one of *IoError, *FormatError, *TruncatedInputError or
// *StructuralValidationError.
func Parse(r io.Reader) (*SparseProblem, error) {
	return parseFrom(r, "")
}

// LoadProblem opens filename and parses it. Errors carry the file name.
func LoadProblem(filename string) (*SparseProblem, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &IoError{Path: filename, Err: err}
	}
	defer file.Close()

	return parseFrom(file, filename)
}

func parseFrom(r io.Reader, path string) (*SparseProblem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	ps := &parser{
		scanner: scanner,
		path:    path,
		p:       new(SparseProblem),
	}
	err := firstError(
		ps.parseMatrix,
		ps.parseRHS,
		ps.parseCost,
	)
	if err != nil {
		return nil, err
	}
	if err := ps.p.validate(); err != nil {
		var sv *StructuralValidationError
		if errors.As(err, &sv) {
			sv.Path = path
		}
		return nil, err
	}
	return ps.p, nil
}

func (ps *parser) parseMatrix() error {
	ps.block = BlockMatrix
	name, err := ps.expectHeader("csc")
	if err != nil {
		return err
	}
	rows, err := ps.nextDim("rows")
	if err != nil {
		return err
	}
	cols, err := ps.nextDim("cols")
	if err != nil {
		return err
	}
	if cols == math.MaxInt {
		return ps.formatf("cols: count %d overflows col_ptr length", cols)
	}
	nnz, err := ps.nextDim("nnz")
	if err != nil {
		return err
	}

	p := ps.p
	p.names[0] = name
	p.rows, p.cols, p.nnz = rows, cols, nnz

	if p.colPtr, err = ps.ints(cols+1, "col_ptr"); err != nil {
		return err
	}
	if p.rowIdx, err = ps.ints(nnz, "row_idx"); err != nil {
		return err
	}
	p.values, err = ps.floats(nnz, "values")
	return err
}

func (ps *parser) parseRHS() error {
	ps.block = BlockRHS
	name, n, err := ps.denseHeader(ps.p.rows, "rows")
	if err != nil {
		return err
	}
	ps.p.names[1] = name
	ps.p.b, err = ps.floats(n, "b")
	return err
}

func (ps *parser) parseCost() error {
	ps.block = BlockCost
	name, n, err := ps.denseHeader(ps.p.cols, "cols")
	if err != nil {
		return err
	}
	ps.p.names[2] = name
	ps.p.c, err = ps.floats(n, "c")
	return err
}

func (ps *parser) denseHeader(want int, dim string) (string, int, error) {
	name, err := ps.expectHeader("dense")
	if err != nil {
		return "", 0, err
	}
	n, err := ps.nextDim("length")
	if err != nil {
		return "", 0, err
	}
	if n != want {
		return "", 0, ps.formatf("declared length %d, matrix has %d %s", n, want, dim)
	}
	return name, n, nil
}

func (ps *parser) expectHeader(tag string) (string, error) {
	name, err := ps.next("block name")
	if err != nil {
		return "", err
	}
	fmtTag, err := ps.next("format tag")
	if err != nil {
		return "", err
	}
	if fmtTag != tag {
		return "", ps.formatf("expected %q format, got %q", tag, fmtTag)
	}
	return name, nil
}

// token names a position in the stream; idx < 0 means a scalar.
type token struct {
	what string
	idx  int
}

func (t token) String() string {
	if t.idx < 0 {
		return t.what
	}
	return fmt.Sprintf("%s[%d]", t.what, t.idx)
}

func (ps *parser) next(what string) (string, error) {
	return ps.nextToken(token{what, -1})
}

func (ps *parser) nextToken(t token) (string, error) {
	if ps.scanner.Scan() {
		return ps.scanner.Text(), nil
	}
	if err := ps.scanner.Err(); err != nil {
		return "", &IoError{Path: ps.path, Err: err}
	}
	return "", &TruncatedInputError{Path: ps.path, Block: ps.block, Expected: t.String()}
}

func (ps *parser) nextInt(t token) (int, error) {
	tok, err := ps.nextToken(t)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ps.formatf("%s: %q is not an integer", t, tok)
	}
	return v, nil
}

func (ps *parser) nextDim(what string) (int, error) {
	v, err := ps.nextInt(token{what, -1})
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ps.formatf("%s: negative count %d", what, v)
	}
	return v, nil
}

func (ps *parser) ints(n int, what string) ([]int, error) {
	if n < 0 {
		return nil, ps.formatf("%s: negative length %d", what, n)
	}
	out := make([]int, 0, min(n, preallocLimit))
	for k := range n {
		v, err := ps.nextInt(token{what, k})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (ps *parser) floats(n int, what string) ([]float64, error) {
	if n < 0 {
		return nil, ps.formatf("%s: negative length %d", what, n)
	}
	out := make([]float64, 0, min(n, preallocLimit))
	for k := range n {
		t := token{what, k}
		tok, err := ps.nextToken(t)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, ps.formatf("%s: %q is not a number", t, tok)
		}
		out = append(out, v)
	}
	return out, nil
}

func (ps *parser) formatf(format string, args ...any) error {
	return &FormatError{Path: ps.path, Block: ps.block, Msg: fmt.Sprintf(format, args...)}
}
