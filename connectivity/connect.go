package connectivity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/point"
	"go.uber.org/zap"
)

// Circuits is the partition left after Connect.
type Circuits struct {
	// Sizes holds every circuit's size, largest first.
	Sizes []int
	// Members lists the input indices of every circuit, ordered by smallest index.
	Members [][]int
	// Connections is the number of pairs actually processed (min(k, pair count)).
	Connections int
	// Merges is the number of connections that joined two different circuits.
	Merges int
}

// Product multiplies the sizes of the top largest circuits.
// Returns ErrTooFewCircuits when top exceeds the circuit count or is not positive,
// and ErrProductOverflow when the product does not fit in an int64.
func (c Circuits) Product(top int) (int64, error) {
	if top <= 0 || top > len(c.Sizes) {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrTooFewCircuits, top, len(c.Sizes))
	}

	product := int64(1)
	for i, s := range c.Sizes[:top] {
		// Circuit sizes are at least 1, so the division is safe.
		if product > math.MaxInt64/int64(s) {
			return 0, fmt.Errorf("%w: after %d of %d sizes, next size %d", ErrProductOverflow, i, top, s)
		}
		product *= int64(s)
	}

	return product, nil
}

// Connect processes the k closest pairs, in the same order as Resolve, and
// reports the resulting circuits. A pair whose ends already share a circuit
// still uses up one of the k connections. k larger than the number of pairs
// processes every pair.
//
// Error Conditions:
//   - ErrInvalidConnections : k <= 0.
//   - ErrTooFewPoints, ErrDuplicatePoint : as Resolve.
func Connect(points []point.Point, k int, opts ...Option) (Circuits, error) {
	// 1. Validate k first, then the points exactly as Resolve does.
	if k <= 0 {
		return Circuits{}, fmt.Errorf("%w: got %d", ErrInvalidConnections, k)
	}
	if err := validate(points); err != nil {
		return Circuits{}, err
	}
	o := buildOptions(opts)

	// 2. Same pair order as Resolve; clamp k to the n(n-1)/2 available pairs.
	pairs := Pairs(points)
	if k > len(pairs) {
		k = len(pairs)
	}
	forest := dsu.New(len(points))

	// 3. Each of the k pairs is one connection, whether or not it merges.
	merges := 0
	for _, p := range pairs[:k] {
		_, merged := forest.Union(p.I, p.J)
		if merged {
			merges++
		}
		o.OnPair(p, merged, forest.Count())
	}

	// 4. Snapshot the partition.

	c := Circuits{
		Sizes:       forest.Sizes(),
		Members:     forest.Sets(),
		Connections: k,
		Merges:      merges,
	}
	o.Logger.Debug("connected closest pairs",
		zap.Int("connections", c.Connections),
		zap.Int("merges", c.Merges),
		zap.Int("circuits", len(c.Sizes)),
	)

	return c, nil
}
