package lpcsc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Block names used in diagnostics.
const (
	BlockMatrix = "matrix"
	BlockRHS    = "rhs"
	BlockCost   = "cost"
)

var (
	ErrUnknownSolver = errors.New("lpcsc: unknown solver")
	ErrShape         = errors.New("lpcsc: problem shape not supported by solver")
)

func location(path, block string) string {
	switch {
	case path != "" && block != "":
		return fmt.Sprintf("%s: %s block", path, block)
	case path != "":
		return path
	case block != "":
		return block + " block"
	}
	return "input"
}

// IoError reports that the input could not be opened or read. It plays the
// role an IOError would elsewhere; the wrapped cause is available via Unwrap.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("lpcsc: %s: read failed: %v", location(e.Path, ""), e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// FormatError reports a literal token or a declared count that disagrees with
// what the format expects at that position.
type FormatError struct {
	Path  string
	Block string
	Msg   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("lpcsc: %s: %s", location(e.Path, e.Block), e.Msg)
}

// TruncatedInputError reports that the token stream ended before Expected
// could be read.
type TruncatedInputError struct {
	Path     string
	Block    string
	Expected string
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("lpcsc: %s: input ended before %s", location(e.Path, e.Block), e.Expected)
}

// StructuralValidationError reports decoded data that break a SparseProblem
// invariant.
type StructuralValidationError struct {
	Path  string
	Block string
	Msg   string
}

func (e *StructuralValidationError) Error() string {
	return fmt.Sprintf("lpcsc: %s: invalid structure: %s", location(e.Path, e.Block), e.Msg)
}

func structuralf(block, format string, args ...any) *StructuralValidationError {
	return &StructuralValidationError{Block: block, Msg: fmt.Sprintf(format, args...)}
}
