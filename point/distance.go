package point

import (
	"math/bits"

	"gonum.org/v1/gonum/spatial/r3"
)

// Word weights used to fold a SquaredDistance into a float64.
const (
	two64  = 1 << 64
	two128 = 1 << 128
)

// SquaredDistance is the exact value dx²+dy²+dz² held as a 192-bit
// unsigned integer (Top:Hi:Lo). Comparing two SquaredDistances with Cmp is
// an exact total order, unlike comparing their float64 square roots.
// Top is at most 2 for int64 coordinates.
type SquaredDistance struct {
	Top, Hi, Lo uint64
}

// Cmp returns -1, 0 or +1 as d is less than, equal to, or greater than o.
func (d SquaredDistance) Cmp(o SquaredDistance) int {
	// Compare word by word, most significant first.
	for _, w := range [3][2]uint64{{d.Top, o.Top}, {d.Hi, o.Hi}, {d.Lo, o.Lo}} {
		switch {
		case w[0] < w[1]:
			return -1
		case w[0] > w[1]:
			return 1
		}
	}

	return 0
}

// Float64 returns the nearest float64 to d.
func (d SquaredDistance) Float64() float64 {
	return float64(d.Top)*two128 + float64(d.Hi)*two64 + float64(d.Lo)
}

// SquaredDistanceBetween returns the exact squared Euclidean distance of a and b.
// Symmetric: SquaredDistanceBetween(a, b) == SquaredDistanceBetween(b, a).
func SquaredDistanceBetween(a, b Point) SquaredDistance {
	var sum SquaredDistance
	for _, axis := range [3][2]int64{{a.X, b.X}, {a.Y, b.Y}, {a.Z, b.Z}} {
		// 1. |u-v| as an exact uint64, then its 128-bit square.
		ad := absDelta(axis[0], axis[1])
		hi, lo := bits.Mul64(ad, ad)

		// 2. Add the square into the running 192-bit sum, carrying upwards.
		var carry uint64
		sum.Lo, carry = bits.Add64(sum.Lo, lo, 0)
		sum.Hi, carry = bits.Add64(sum.Hi, hi, carry)
		sum.Top += carry
	}

	return sum
}

// absDelta returns |u-v|. The true difference is below 2^64, so the
// wrapping uint64 subtraction of the larger minus the smaller is exact.
func absDelta(u, v int64) uint64 {
	if u >= v {
		return uint64(u) - uint64(v)
	}

	return uint64(v) - uint64(u)
}

// Distance returns the Euclidean distance between a and b.
// Coordinates beyond 2^53 are rounded when converted to float64.
func Distance(a, b Point) float64 {
	return r3.Norm(r3.Sub(a.Vec(), b.Vec()))
}

// Vec converts p to a gonum r3 vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}
