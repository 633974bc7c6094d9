package espresso_test

import (
	"fmt"

	"github.com/gagradebnath/DLD/cube"
	"github.com/gagradebnath/DLD/espresso"
)

// ExampleMinimize reduces Σ(1,3,5,7) over three variables: every minterm
// has the lowest-order bit set, so EXPAND grows the cover to the single
// one-literal cube and the cost test stops the loop on the next cycle.
func ExampleMinimize() {
	fn, _ := cube.NewFunction(3, []int{1, 3, 5, 7}, nil)

	res, _ := espresso.Minimize(fn, espresso.DefaultOptions())
	expr, _ := cube.Format(res.Cover, cube.DefaultNames(3))

	fmt.Println("expr:", expr)
	fmt.Println("iterations:", res.Iterations)
	fmt.Println("truncated:", res.Truncated)
	// Output:
	// expr: A2
	// iterations: 2
	// truncated: false
}

// ExampleMinimizeFrom resumes from a caller-supplied two-cube seed that
// EXPAND immediately collapses into one.
func ExampleMinimizeFrom() {
	fn, _ := cube.NewFunction(3, []int{1, 3, 5, 7}, nil)
	a, _ := cube.Parse("0X1")
	b, _ := cube.Parse("1X1")

	res, _ := espresso.MinimizeFrom(fn, cube.Cover{a, b}, espresso.DefaultOptions())

	fmt.Println(res.Cover[0])
	// Output:
	// XX1
}
