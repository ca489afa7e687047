package connectivity_test

import (
	"fmt"

	"github.com/katalvlaran/junction/connectivity"
	"github.com/katalvlaran/junction/point"
)

// ExampleResolve joins four boxes on a line; the widest gap is closed last.
//
//	0 ─1─ 1 ─── 4 ── 6
//	  gap 1   gap 3  gap 2
func ExampleResolve() {
	pts := point.MustParseAll("0,0,0\n1,0,0\n4,0,0\n6,0,0")

	res, err := connectivity.Resolve(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("last link: %s - %s at %.0f, scalar %d\n", res.A, res.B, res.Distance, res.Scalar)
	// Output: last link: 1,0,0 - 4,0,0 at 3, scalar 4
}

// ExampleConnect sizes the circuits after the two shortest connections.
func ExampleConnect() {
	pts := point.MustParseAll("0,0,0\n1,0,0\n4,0,0\n6,0,0\n20,0,0")

	c, err := connectivity.Connect(pts, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	product, _ := c.Product(2)

	fmt.Println("sizes:", c.Sizes, "product:", product)
	// Output: sizes: [2 2 1] product: 4
}

// ExamplePairs lists the processing order for three points.
func ExamplePairs() {
	pts := point.MustParseAll("0,0,0\n0,3,4\n0,0,1")

	for _, p := range connectivity.Pairs(pts) {
		fmt.Println(p)
	}
	// Output:
	// (0,0,0)-(0,0,1) d=1.0000
	// (0,3,4)-(0,0,1) d=4.2426
	// (0,0,0)-(0,3,4) d=5.0000
}
