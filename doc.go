// Package junction joins points in 3-D space into circuits, shortest
// distance first, and reports which pair finally connects everything.
//
// What is junction?
//
//	A small, dependency-light toolkit made of:
//		• point         integer 3-D points, "x,y,z" parsing, exact distances
//		• dsu           disjoint-set forest (union by size, path compression)
//		• connectivity  Resolve (completing pair) and Connect (k closest pairs)
//		• config        YAML run configuration
//		• cmd/junction  the command-line front end
//
// Quick ASCII example:
//
//	A ─1─ B ───3─── C ─2─ D
//
//	Pairs are joined in the order A–B, C–D, B–C; joining B–C leaves a
//	single circuit, so Resolve reports (B, C).
//
// Resolve is Kruskal's algorithm on the complete graph over the points,
// stopped at the first edge that leaves one component: the reported
// distance is the bottleneck (heaviest edge) of a minimum spanning tree.
//
//	go install github.com/katalvlaran/junction/cmd/junction@latest
package junction
