package dsu

import "sort"

// Forest is a disjoint-set forest over the indices 0..n-1.
type Forest struct {
	parent []int // parent[i] == i for roots
	size   []int // only meaningful at roots
	count  int   // number of disjoint sets
}

// New returns a Forest of n singleton sets. n < 0 is treated as 0.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n, // every element starts alone
	}
	// Each element is its own root with a set of size 1.
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the number of disjoint sets.
func (f *Forest) Count() int { return f.count }

// Find returns the root of the set containing x, compressing the path.
// Panics if x is out of range.
func (f *Forest) Find(x int) int {
	// 1. Walk up to the root.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// 2. Second pass: point every node on the path directly at root.
	// The tuple assignment reads parent[x] before overwriting it.
	for f.parent[x] != root {
		x, f.parent[x] = f.parent[x], root
	}

	return root
}

// Union merges the sets containing x and y. It returns the root of the
// resulting set and whether a merge actually happened (false when x and y
// were already connected).
func (f *Forest) Union(x, y int) (root int, merged bool) {
	// 1. Resolve both roots (compressing both paths).
	rx, ry := f.Find(x), f.Find(y)
	if rx == ry {
		// Already one set: nothing to merge.
		return rx, false
	}
	// 2. Union by size: rx is the larger root and absorbs ry.
	if f.size[rx] < f.size[ry] {
		rx, ry = ry, rx
	}
	f.parent[ry] = rx
	f.size[rx] += f.size[ry] // ry's size is stale from now on
	f.count--                // the set count only ever decreases

	return rx, true
}

// Connected reports whether x and y belong to the same set.
func (f *Forest) Connected(x, y int) bool {
	return f.Find(x) == f.Find(y)
}

// Size returns the number of elements in the set containing x.
func (f *Forest) Size(x int) int {
	return f.size[f.Find(x)]
}

// Sizes returns the size of every set, largest first.
func (f *Forest) Sizes() []int {
	sizes := make([]int, 0, f.count)
	// Only roots carry a valid size.
	for i, p := range f.parent {
		if p == i {
			sizes = append(sizes, f.size[i])
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// Sets returns the members of every set, each in ascending order, with the
// sets ordered by their smallest member.
func (f *Forest) Sets() [][]int {
	byRoot := make(map[int]int, f.count) // root -> position in out
	out := make([][]int, 0, f.count)
	// Ascending i means a set is first seen at its smallest member.
	for i := range f.parent {
		r := f.Find(i)
		pos, ok := byRoot[r]
		if !ok {
			// First member of a new set opens its slot.
			pos = len(out)
			byRoot[r] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], i)
	}

	return out
}
