// Package espresso_test — cross-checks against the exact minimizer.
//
// The heuristic can never beat the exact minimum cube count, and both
// engines must agree on soundness and off-set disjointness for the same
// function.
package espresso_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gagradebnath/DLD/cube"
	"github.com/gagradebnath/DLD/espresso"
	"github.com/gagradebnath/DLD/qm"
)

// TestHeuristicVersusExact runs both minimizers over seeded random
// 4-variable functions and checks, per trial:
//   - both covers are sound and stay inside minterms ∪ don't-cares;
//   - the heuristic cube count is never below the exact minimum;
//   - both render to non-empty deterministic expressions.
func TestHeuristicVersusExact(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	names := cube.DefaultNames(4)

	for trial := 0; trial < 100; trial++ {
		var minterms, dontCares []int
		for m := 0; m < 1<<4; m++ {
			switch rng.Intn(4) {
			case 0:
				minterms = append(minterms, m)
			case 1:
				dontCares = append(dontCares, m)
			}
		}
		fn, err := cube.NewFunction(4, minterms, dontCares)
		require.NoError(t, err)
		must := fn.MustCover()

		exact, err := qm.Minimize(fn, qm.DefaultOptions())
		require.NoError(t, err)
		require.False(t, exact.Truncated)

		heur, err := espresso.Minimize(fn, espresso.DefaultOptions())
		require.NoError(t, err)

		for _, res := range []cube.Cover{exact.Cover, heur.Cover} {
			require.True(t, res.CoversAll(must), "trial %d: uncovered minterm", trial)
			for _, m := range res.Minterms() {
				require.True(t, fn.IsGroupable(m), "trial %d: off-set leak at %d", trial, m)
			}
		}

		require.GreaterOrEqual(t, heur.Cover.CubeCount(), exact.Cover.CubeCount(),
			"trial %d: heuristic beat the exact minimum", trial)

		exprExact, err := cube.Format(exact.Cover, names)
		require.NoError(t, err)
		exprHeur, err := cube.Format(heur.Cover, names)
		require.NoError(t, err)
		if len(must) == 0 {
			require.Equal(t, "0", exprExact)
			require.Equal(t, "0", exprHeur)
		} else {
			require.NotEmpty(t, exprExact)
			require.NotEmpty(t, exprHeur)
		}
	}
}
