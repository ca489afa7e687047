package connectivity_test

import (
	"math/rand"

	"github.com/katalvlaran/junction/point"
)

// junctionBoxes is the 20-point reference list.
const junctionBoxes = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689`

// randomPoints returns n distinct points with coordinates in [0, span).
func randomPoints(r *rand.Rand, n, span int) []point.Point {
	seen := make(map[point.Point]bool, n)
	out := make([]point.Point, 0, n)
	for len(out) < n {
		p := point.Point{X: int64(r.Intn(span)), Y: int64(r.Intn(span)), Z: int64(r.Intn(span))}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}

	return out
}

// shuffled returns a permuted copy of pts.
func shuffled(r *rand.Rand, pts []point.Point) []point.Point {
	out := append([]point.Point(nil), pts...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}
