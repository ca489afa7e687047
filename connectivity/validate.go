package connectivity

import (
	"fmt"

	"github.com/katalvlaran/junction/point"
)

// validate enforces the preconditions shared by Resolve and Connect.
func validate(points []point.Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	seen := make(map[point.Point]int, len(points))
	for i, p := range points {
		if first, ok := seen[p]; ok {
			return fmt.Errorf("%w: %s at indices %d and %d", ErrDuplicatePoint, p, first, i)
		}
		seen[p] = i
	}

	return nil
}
