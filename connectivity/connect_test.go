package connectivity_test

import (
	"testing"

	"github.com/katalvlaran/junction/connectivity"
	"github.com/katalvlaran/junction/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnect_ReferenceFixture joins the ten closest pairs of the 20-point list.
func TestConnect_ReferenceFixture(t *testing.T) {
	pts := point.MustParseAll(junctionBoxes)

	c, err := connectivity.Connect(pts, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 2, 2, 1, 1, 1, 1, 1, 1, 1}, c.Sizes)
	assert.Equal(t, 10, c.Connections)
	assert.Equal(t, 9, c.Merges) // one of the ten pairs was already connected
	assert.Len(t, c.Members, 11)

	product, err := c.Product(3)
	require.NoError(t, err)
	assert.Equal(t, int64(40), product)
}

// TestConnect_MembersPartitionInput checks that Members covers every index once.
func TestConnect_MembersPartitionInput(t *testing.T) {
	pts := point.MustParseAll(junctionBoxes)

	c, err := connectivity.Connect(pts, 10)
	require.NoError(t, err)

	seen := make(map[int]bool, len(pts))
	total := 0
	for _, members := range c.Members {
		for _, idx := range members {
			assert.False(t, seen[idx], "index %d appears twice", idx)
			seen[idx] = true
		}
		total += len(members)
	}
	assert.Equal(t, len(pts), total)
	// The closest pair (indices 0 and 19) must share a circuit.
	assert.Contains(t, c.Members[0], 19)
}

// TestConnect_AllPairs clamps k and ends in a single circuit.
func TestConnect_AllPairs(t *testing.T) {
	pts := point.MustParseAll(junctionBoxes)

	c, err := connectivity.Connect(pts, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, []int{len(pts)}, c.Sizes)
	assert.Equal(t, len(pts)*(len(pts)-1)/2, c.Connections)
	assert.Equal(t, len(pts)-1, c.Merges)

	_, err = c.Product(2)
	assert.ErrorIs(t, err, connectivity.ErrTooFewCircuits)
}

// TestConnect_Validation covers the argument and input checks.
func TestConnect_Validation(t *testing.T) {
	pts := point.MustParseAll(junctionBoxes)

	_, err := connectivity.Connect(pts, 0)
	assert.ErrorIs(t, err, connectivity.ErrInvalidConnections)

	_, err = connectivity.Connect(pts, -1)
	assert.ErrorIs(t, err, connectivity.ErrInvalidConnections)

	_, err = connectivity.Connect(pts[:1], 3)
	assert.ErrorIs(t, err, connectivity.ErrTooFewPoints)

	_, err = connectivity.Connect(append(pts[:2:2], pts[0]), 3)
	assert.ErrorIs(t, err, connectivity.ErrDuplicatePoint)
	assert.ErrorIs(t, err, connectivity.ErrUnreachable)
}

// TestCircuits_Product checks bounds and arithmetic.
func TestCircuits_Product(t *testing.T) {
	c := connectivity.Circuits{Sizes: []int{6, 3, 1}}

	p, err := c.Product(1)
	require.NoError(t, err)
	assert.Equal(t, int64(6), p)

	p, err = c.Product(3)
	require.NoError(t, err)
	assert.Equal(t, int64(18), p)

	_, err = c.Product(0)
	assert.ErrorIs(t, err, connectivity.ErrTooFewCircuits)
	_, err = c.Product(4)
	assert.ErrorIs(t, err, connectivity.ErrTooFewCircuits)
}

// TestCircuits_ProductOverflow reports products beyond int64 instead of wrapping.
func TestCircuits_ProductOverflow(t *testing.T) {
	c := connectivity.Circuits{Sizes: []int{1 << 32, 1 << 32, 2}}

	_, err := c.Product(2)
	assert.ErrorIs(t, err, connectivity.ErrProductOverflow)

	// 2^31 * 2^31 * 2 = 2^63 is one past MaxInt64.
	c = connectivity.Circuits{Sizes: []int{1 << 31, 1 << 31, 2}}
	p, err := c.Product(2)
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, p)
	_, err = c.Product(3)
	assert.ErrorIs(t, err, connectivity.ErrProductOverflow)
}

// TestConnect_AgreesWithResolve: connecting exactly Processed pairs leaves one circuit,
// one fewer leaves two.
func TestConnect_AgreesWithResolve(t *testing.T) {
	pts := point.MustParseAll(junctionBoxes)
	res, err := connectivity.Resolve(pts)
	require.NoError(t, err)

	c, err := connectivity.Connect(pts, res.Processed)
	require.NoError(t, err)
	assert.Len(t, c.Sizes, 1)

	c, err = connectivity.Connect(pts, res.Processed-1)
	require.NoError(t, err)
	assert.Len(t, c.Sizes, 2)
}
