package connectivity

import (
	"fmt"

	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/point"
	"go.uber.org/zap"
)

// Resolve joins points pair by pair in ascending distance order and returns
// the pair whose merge put every point into one circuit.
//
// Error Conditions:
//   - ErrTooFewPoints   : len(points) < 2.
//   - ErrDuplicatePoint : a point occurs twice (wraps ErrUnreachable).
//   - ErrUnreachable    : pairs exhausted before full connectivity.
//
// Steps:
//  1. Validate the input.
//  2. Build the sorted pair list (Pairs).
//  3. For each pair, skip if both ends share a circuit, otherwise union them.
//  4. Return as soon as the merged circuit holds len(points) members.
//
// Complexity: O(n² log n). Memory: O(n²).
func Resolve(points []point.Point, opts ...Option) (Result, error) {
	// 1. Validate: at least two points, no repeated point.
	if err := validate(points); err != nil {
		return Result{}, err
	}
	// Apply functional options over the defaults (XProduct, no-op logger and hook).
	o := buildOptions(opts)

	// 2. Sorted pairs and a singleton forest.
	n := len(points)       // circuit size that means "fully connected"
	pairs := Pairs(points) // ascending distance, ties by (I, J)
	forest := dsu.New(n)   // one circuit per point to start with
	o.Logger.Debug("resolving connectivity", zap.Int("points", n), zap.Int("pairs", len(pairs)))

	// 3. Walk pairs in order.
	merges := 0 // unions performed so far
	for k, p := range pairs {
		// Union is a no-op (merged == false) when both ends already share a circuit.
		root, merged := forest.Union(p.I, p.J)
		// Report every processed pair, skipped or not.
		o.OnPair(p, merged, forest.Count())
		if !merged {
			// Same circuit: this pair contributes nothing.
			continue
		}
		merges++
		// Build the debug fields only when Debug is enabled.
		if ce := o.Logger.Check(zap.DebugLevel, "merged circuits"); ce != nil {
			ce.Write(
				zap.Stringer("a", p.A),
				zap.Stringer("b", p.B),
				zap.Float64("distance", p.Distance),
				zap.Int("size", forest.Size(root)),
				zap.Int("circuits", forest.Count()),
			)
		}

		// 4. Full connectivity reached: the merged circuit holds every point.
		if forest.Size(root) == n {
			res := Result{
				A:         p.A,
				B:         p.B,
				I:         p.I,
				J:         p.J,
				Distance:  p.Distance,
				Scalar:    o.Scalar(p.A, p.B),
				Processed: k + 1, // k is 0-based
				Merges:    merges,
			}
			o.Logger.Debug("connectivity complete",
				zap.Stringer("a", res.A),
				zap.Stringer("b", res.B),
				zap.Stringer("scalar", res.Scalar),
				zap.Int("processed", res.Processed),
			)

			return res, nil
		}
	}

	// 5. Only reachable if the forest or pair enumeration is broken.
	return Result{}, fmt.Errorf("%w: %d circuits remain after %d pairs", ErrUnreachable, forest.Count(), len(pairs))
}
