package qm_test

import (
	"fmt"

	"github.com/gagradebnath/DLD/cube"
	"github.com/gagradebnath/DLD/qm"
)

// ExampleMinimize minimizes the full-adder carry Σ(3,5,6,7): all three
// prime implicants are essential, so the exact cover is AB + ACin + BCin.
func ExampleMinimize() {
	fn, _ := cube.NewFunction(3, []int{3, 5, 6, 7}, nil)

	res, _ := qm.Minimize(fn, qm.DefaultOptions())
	expr, _ := cube.Format(res.Cover, []string{"A", "B", "Cin"})

	fmt.Println("cubes:", res.Cover.CubeCount())
	fmt.Println("expr:", expr)
	// Output:
	// cubes: 3
	// expr: AB + ACin + BCin
}

// ExampleMinimize_dontCares shows don't-cares enlarging groupings: with
// d(4,6) available, Σ(0,2) collapses to the single cube C'.
func ExampleMinimize_dontCares() {
	fn, _ := cube.NewFunction(3, []int{0, 2}, []int{4, 6})

	res, _ := qm.Minimize(fn, qm.DefaultOptions())
	expr, _ := cube.Format(res.Cover, []string{"A", "B", "C"})

	fmt.Println("expr:", expr)
	// Output:
	// expr: C'
}

// ExamplePrimeImplicants lists the prime implicants of the cyclic
// function Σ(0,1,2,5,6,7) — six primes, none essential.
func ExamplePrimeImplicants() {
	fn, _ := cube.NewFunction(3, []int{0, 1, 2, 5, 6, 7}, nil)

	primes, _ := qm.PrimeImplicants(fn)
	for _, p := range primes {
		fmt.Println(p)
	}
	// Output:
	// 00X
	// 0X0
	// X01
	// X10
	// 1X1
	// 11X
}
