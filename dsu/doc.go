// Package dsu provides a fixed-size disjoint-set forest (union-find) over
// the integer indices 0..n-1.
//
// Each element starts in its own singleton set. Union merges two sets by
// attaching the smaller tree under the larger root (union by size) and Find
// compresses every path it walks, so a sequence of m operations costs
// O(m·α(n)).
//
// The forest owns plain parent/size slices and holds no locks: it is meant
// to live inside a single call frame, as in connectivity.Resolve.
package dsu
