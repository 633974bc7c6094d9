package cube

// Evaluate reports the value of the sum-of-products expression cv under
// the given assignment, where assignment[i] is the value of the variable
// at position i (position 0 = most significant). A cube contributes true
// when every fixed position agrees with the assignment; the cover
// evaluates to true when any cube contributes.
//
// An empty cover is the constant 0.
// Returns ErrCubeWidth when len(assignment) differs from a cube's width.
// Complexity: O(c·n).
func (cv Cover) Evaluate(assignment []bool) (bool, error) {
	for _, c := range cv {
		if c.Width() != len(assignment) {
			return false, ErrCubeWidth
		}
		match := true
		for i := 0; i < c.Width() && match; i++ {
			switch c.Symbol(i) {
			case One:
				match = assignment[i]
			case Zero:
				match = !assignment[i]
			}
		}
		if match {
			return true, nil
		}
	}

	return false, nil
}
