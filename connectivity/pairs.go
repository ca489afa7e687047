package connectivity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/junction/point"
)

// Pair is an unordered pair of distinct input points and their distance.
type Pair struct {
	I, J     int // input indices, I < J
	A, B     point.Point
	Squared  point.SquaredDistance
	Distance float64
}

// String renders the pair as "(a)-(b) d=distance".
func (p Pair) String() string {
	return fmt.Sprintf("(%s)-(%s) d=%.4f", p.A, p.B, p.Distance)
}

// less is the strict total order pairs are processed in: exact squared
// distance, then I, then J.
func (p Pair) less(q Pair) bool {
	if c := p.Squared.Cmp(q.Squared); c != 0 {
		return c < 0
	}
	if p.I != q.I {
		return p.I < q.I
	}

	return p.J < q.J
}

// Pairs enumerates every unordered pair of points and returns them in
// processing order (ascending distance, ties by index pair).
// Fewer than two points yield an empty slice.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Pairs(points []point.Point) []Pair {
	n := len(points)
	if n < 2 {
		return []Pair{}
	}

	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{
				I:        i,
				J:        j,
				A:        points[i],
				B:        points[j],
				Squared:  point.SquaredDistanceBetween(points[i], points[j]),
				Distance: point.Distance(points[i], points[j]),
			})
		}
	}

	sort.Slice(pairs, func(a, b int) bool {
		return pairs[a].less(pairs[b])
	})

	return pairs
}
