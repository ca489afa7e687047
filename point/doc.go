// Package point defines the integer 3-D Point used throughout junction,
// together with its text form and the distance functions the connectivity
// resolver sorts by.
//
// What & Why
//
//   - A Point is an immutable {X, Y, Z} triple of int64 coordinates.
//     Equality is structural, so Points are valid map keys.
//
//   - Every absolute coordinate delta fits in a uint64 even across the full
//     int64 range; its square is a 128-bit product and the sum of three
//     squares needs at most 130 bits, so SquaredDistance holds three 64-bit
//     words. Sorting by the exact squared distance never suffers float
//     rounding.
//
//   - Distance returns the Euclidean distance as a float64 for reporting.
//     It is computed with gonum's spatial/r3 vectors.
//
// Text Format
//
//	"x,y,z"   signed decimal integers, one point per line
//
//	Parse("162,817,812")  → Point{162, 817, 812}
//	Parse("-1, 2 ,3")     → Point{-1, 2, 3} (component whitespace is trimmed)
//	Parse("1,2")          → *ParseError wrapping ErrMalformed
//
// ParseAll reads one point per line from an io.Reader, skips blank lines
// and reports the 1-based line number of the first malformed line.
//
// Complexity
//
//   - Parse:                  O(len(s))
//   - SquaredDistanceBetween: O(1)
//   - Distance:               O(1)
package point
