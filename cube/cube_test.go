// Package cube_test validates the ternary cube algebra.
// Focus:
//  1. Construction (FromMinterm, Parse, Supercube) and strict sentinels.
//  2. Coverage, distance, adjacency, merging, containment, intersection.
//  3. Immutability: operations never mutate their operands.
package cube_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gagradebnath/DLD/cube"
)

func mustParse(t *testing.T, s string) cube.Cube {
	t.Helper()
	c, err := cube.Parse(s)
	require.NoError(t, err)

	return c
}

// TestFromMinterm checks MSB-first bit placement and range sentinels.
func TestFromMinterm(t *testing.T) {
	c, err := cube.FromMinterm(5, 3)
	require.NoError(t, err)
	require.Equal(t, "101", c.Key())
	require.Equal(t, 3, c.Width())
	require.Equal(t, 3, c.Literals())
	require.Equal(t, 2, c.Ones())

	_, err = cube.FromMinterm(8, 3)
	require.ErrorIs(t, err, cube.ErrIndexRange)
	_, err = cube.FromMinterm(-1, 3)
	require.ErrorIs(t, err, cube.ErrIndexRange)
	_, err = cube.FromMinterm(0, 1)
	require.ErrorIs(t, err, cube.ErrVariableCount)
	_, err = cube.FromMinterm(0, cube.MaxVariables+1)
	require.ErrorIs(t, err, cube.ErrVariableCount)
}

// TestParse accepts the "01X" alphabet plus '-' as an X alias.
func TestParse(t *testing.T) {
	c := mustParse(t, "0-1X")
	require.Equal(t, "0X1X", c.Key())

	_, err := cube.Parse("012")
	require.ErrorIs(t, err, cube.ErrSymbol)
	_, err = cube.Parse("1")
	require.ErrorIs(t, err, cube.ErrVariableCount)
}

// TestCovers verifies fixed-position matching with X wildcards.
func TestCovers(t *testing.T) {
	c := mustParse(t, "1X0")
	require.True(t, c.Covers(4))  // 100
	require.True(t, c.Covers(6))  // 110
	require.False(t, c.Covers(5)) // 101
	require.False(t, c.Covers(0))
	require.False(t, c.Covers(8)) // out of the 2^3 space
	require.False(t, c.Covers(-1))
}

// TestDistance counts only opposing fixed positions.
func TestDistance(t *testing.T) {
	a := mustParse(t, "101")
	b := mustParse(t, "110")
	d, err := a.Distance(b)
	require.NoError(t, err)
	require.Equal(t, 2, d)

	// X against a fixed position contributes nothing.
	c := mustParse(t, "1X1")
	d, err = a.Distance(c)
	require.NoError(t, err)
	require.Equal(t, 0, d)

	_, err = a.Distance(mustParse(t, "10"))
	require.ErrorIs(t, err, cube.ErrCubeWidth)
}

// TestMergeable requires distance exactly 1 and aligned X positions.
func TestMergeable(t *testing.T) {
	require.True(t, mustParse(t, "101").Mergeable(mustParse(t, "111")))
	require.True(t, mustParse(t, "1X1").Mergeable(mustParse(t, "0X1")))
	// Distance 2.
	require.False(t, mustParse(t, "101").Mergeable(mustParse(t, "110")))
	// Misaligned X: 0X1 vs 001 would merge unequal minterm sets.
	require.False(t, mustParse(t, "0X1").Mergeable(mustParse(t, "001")))
	// Identical cubes are at distance 0.
	require.False(t, mustParse(t, "101").Mergeable(mustParse(t, "101")))
}

// TestMerge frees exactly the differing position and returns new values.
func TestMerge(t *testing.T) {
	a := mustParse(t, "101")
	b := mustParse(t, "111")
	m, err := a.Merge(b)
	require.NoError(t, err)
	require.Equal(t, "1X1", m.Key())
	// Operands are untouched.
	require.Equal(t, "101", a.Key())
	require.Equal(t, "111", b.Key())

	_, err = a.Merge(mustParse(t, "110"))
	require.ErrorIs(t, err, cube.ErrNotAdjacent)
	_, err = a.Merge(mustParse(t, "10"))
	require.ErrorIs(t, err, cube.ErrCubeWidth)
}

// TestContains is broader-or-equal containment over fixed positions.
func TestContains(t *testing.T) {
	require.True(t, mustParse(t, "1XX").Contains(mustParse(t, "101")))
	require.True(t, mustParse(t, "1X1").Contains(mustParse(t, "1X1")))
	require.False(t, mustParse(t, "101").Contains(mustParse(t, "1X1"))) // narrower cannot contain broader
	require.False(t, mustParse(t, "0XX").Contains(mustParse(t, "101")))
	require.False(t, mustParse(t, "1X").Contains(mustParse(t, "1X1")))
}

// TestIntersect returns the common sub-cube or reports disjointness.
func TestIntersect(t *testing.T) {
	got, ok := mustParse(t, "1XX").Intersect(mustParse(t, "X01"))
	require.True(t, ok)
	require.Equal(t, "101", got.Key())

	_, ok = mustParse(t, "1XX").Intersect(mustParse(t, "0XX"))
	require.False(t, ok)
	_, ok = mustParse(t, "1XX").Intersect(mustParse(t, "0X"))
	require.False(t, ok)
}

// TestMinterms enumerates covered indices in ascending order.
func TestMinterms(t *testing.T) {
	require.Equal(t, []int{4, 6}, mustParse(t, "1X0").Minterms())
	require.Equal(t, []int{5}, mustParse(t, "101").Minterms())
	require.Equal(t, []int{0, 1, 2, 3}, mustParse(t, "XX").Minterms())
}

// TestSupercube fixes agreeing positions and frees the rest.
func TestSupercube(t *testing.T) {
	sc, err := cube.Supercube([]int{1, 3, 5, 7}, 3)
	require.NoError(t, err)
	require.Equal(t, "XX1", sc.Key())

	sc, err = cube.Supercube([]int{6}, 3)
	require.NoError(t, err)
	require.Equal(t, "110", sc.Key())

	_, err = cube.Supercube(nil, 3)
	require.ErrorIs(t, err, cube.ErrIndexRange)
	_, err = cube.Supercube([]int{8}, 3)
	require.ErrorIs(t, err, cube.ErrIndexRange)
	_, err = cube.Supercube([]int{0}, 1)
	require.ErrorIs(t, err, cube.ErrVariableCount)
}

// TestWithSymbolImmutability confirms value semantics on position edits.
func TestWithSymbolImmutability(t *testing.T) {
	c := mustParse(t, "101")
	g := c.WithSymbol(1, cube.X)
	require.Equal(t, "1X1", g.Key())
	require.Equal(t, "101", c.Key())
	require.True(t, g.Contains(c))
}

// TestIsFull recognizes only the all-X cube.
func TestIsFull(t *testing.T) {
	require.True(t, mustParse(t, "XXX").IsFull())
	require.False(t, mustParse(t, "XX1").IsFull())
}
