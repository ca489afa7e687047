package point

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates a line that is not three comma-separated components.
// It carries no package prefix; it is always reported inside a *ParseError.
var ErrMalformed = errors.New("expected three comma-separated components")

// Point is an immutable position in 3-D integer space.
type Point struct {
	X, Y, Z int64
}

// String renders p in its parseable "x,y,z" form.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// ParseError describes why a piece of text could not be read as a Point.
//
// Line is the 1-based line number when the text came from ParseAll and 0
// when it came from Parse directly. Err is either ErrMalformed or the
// underlying strconv error.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("point: line %d: parse %q: %v", e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("point: parse %q: %v", e.Text, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }
