// Command junction joins 3-D junction boxes into circuits by ascending
// distance and reports the pair that completes full connectivity.
//
// Usage:
//
//	junction resolve boxes.txt            # product of the completing pair's x-coordinates
//	junction circuits boxes.txt -k 1000   # product of the three largest circuits
//	junction pairs boxes.txt --limit 5    # the closest pairs in processing order
//
// Input is one "x,y,z" point per line; "-" or no argument reads stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "junction:", err)
		os.Exit(1)
	}
}
