// Package connectivity merges a set of 3-D points into connected groups
// ("circuits") by ascending pairwise distance.
//
// What & Why
//
//   - Resolve answers: which pair of points, when joined, finally puts every
//     point into a single circuit? Joining pairs from shortest to longest is
//     Kruskal's algorithm on the complete graph over the points, so the
//     completing pair is the longest edge of its minimum spanning tree (the
//     bottleneck).
//
//   - Connect answers the companion question: after the k shortest pairs have
//     been joined, how large are the circuits? Every one of the k pairs
//     consumes a connection even when its ends already share a circuit.
//
// Algorithm (Resolve)
//
//  1. Validate: at least two points, no repeated point.
//  2. Enumerate all n(n-1)/2 unordered pairs (Pairs).
//  3. Sort by exact squared distance; equal distances are ordered by the
//     index pair (I, J), so the processing order is a strict total order.
//  4. Walk the pairs with a dsu.Forest: skip pairs already connected,
//     otherwise union them. When the merged circuit holds all n points,
//     return that pair.
//  5. Running out of pairs is reported as ErrUnreachable. With validated
//     input it cannot happen; it guards the invariant.
//
// Ties
//
//	When two different pairs could complete connectivity at the same distance,
//	the one with the lower (I, J) index pair is processed first and wins.
//	Permuting the input can therefore change the reported pair only in that
//	case; the completing distance never changes.
//
// Complexity
//
//   - Time:   O(n² log n) for the sort, O(n² α(n)) for the merges.
//   - Memory: O(n²) for the pair list.
//
// Errors
//
//   - ErrTooFewPoints       fewer than two points
//   - ErrDuplicatePoint     the same point appears twice (wraps ErrUnreachable)
//   - ErrUnreachable        pairs exhausted without full connectivity
//   - ErrInvalidConnections Connect with k <= 0
//   - ErrTooFewCircuits     Circuits.Product asked for more circuits than exist
//   - ErrProductOverflow    Circuits.Product result does not fit in int64
package connectivity
