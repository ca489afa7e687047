package point

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a single "x,y,z" point.
//
// Each component is trimmed of surrounding whitespace and parsed as a signed
// base-10 int64. Missing or surplus components yield a *ParseError wrapping
// ErrMalformed; non-numeric or out-of-range components yield a *ParseError
// wrapping the strconv error (strconv.ErrSyntax / strconv.ErrRange).
func Parse(s string) (Point, error) {
	text := strings.TrimSpace(s)
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return Point{}, &ParseError{Text: s, Err: ErrMalformed}
	}

	var coords [3]int64
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			// Keep only the sentinel from *strconv.NumError; the text is already in ParseError.
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}

			return Point{}, &ParseError{Text: s, Err: err}
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ParseAll reads one point per line from r. Blank lines are skipped.
// The first malformed line aborts the read with a *ParseError carrying its
// 1-based line number.
func ParseAll(r io.Reader) ([]Point, error) {
	var (
		points []Point
		line   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		p, err := Parse(text)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = line
			}

			return nil, err
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return points, nil
}

// MustParseAll is ParseAll over a string that panics on error.
// Intended for fixtures and examples.
func MustParseAll(s string) []Point {
	points, err := ParseAll(strings.NewReader(s))
	if err != nil {
		panic(err)
	}

	return points
}
