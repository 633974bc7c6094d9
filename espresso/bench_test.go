package espresso_test

import (
	"math/rand"
	"testing"

	"github.com/gagradebnath/DLD/cube"
	"github.com/gagradebnath/DLD/espresso"
)

// benchmarkMinimize runs the heuristic loop on a seeded random function
// over n variables with the given on-set density (out of 4).
func benchmarkMinimize(b *testing.B, n, density int) {
	rng := rand.New(rand.NewSource(1))
	var minterms []int
	for m := 0; m < 1<<uint(n); m++ {
		if rng.Intn(4) < density {
			minterms = append(minterms, m)
		}
	}
	fn, err := cube.NewFunction(n, minterms, nil)
	if err != nil {
		b.Fatalf("NewFunction failed: %v", err)
	}
	opts := espresso.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = espresso.Minimize(fn, opts); err != nil {
			b.Fatalf("Minimize failed: %v", err)
		}
	}
}

// BenchmarkMinimize_Sparse4 benchmarks a sparse 4-variable function.
func BenchmarkMinimize_Sparse4(b *testing.B) { benchmarkMinimize(b, 4, 1) }

// BenchmarkMinimize_Dense8 benchmarks a dense 8-variable function.
func BenchmarkMinimize_Dense8(b *testing.B) { benchmarkMinimize(b, 8, 3) }

// BenchmarkMinimize_Sparse10 benchmarks a sparse 10-variable function.
func BenchmarkMinimize_Sparse10(b *testing.B) { benchmarkMinimize(b, 10, 1) }
