package cube

import "sort"

// Cover is a set of cubes over one shared width. A minimizer returns a
// Cover whose union includes every true minterm of the minimized
// function; the Cover is owned by the caller and holds no engine state.
type Cover []Cube

// CubeCount returns the number of cubes in the cover.
func (cv Cover) CubeCount() int { return len(cv) }

// LiteralCost returns the total number of fixed positions across the
// cover — the standard two-level cost measure (fewer literals, simpler
// expression). An empty cover costs 0.
// Complexity: O(c·n).
func (cv Cover) LiteralCost() int {
	cost := 0
	for _, c := range cv {
		cost += c.Literals()
	}

	return cost
}

// Covers reports whether at least one cube of the cover covers minterm m.
// Complexity: O(c·n).
func (cv Cover) Covers(m int) bool {
	for _, c := range cv {
		if c.Covers(m) {
			return true
		}
	}

	return false
}

// CoversAll reports whether every index in minterms is covered.
// Complexity: O(k·c·n).
func (cv Cover) CoversAll(minterms []int) bool {
	for _, m := range minterms {
		if !cv.Covers(m) {
			return false
		}
	}

	return true
}

// Minterms returns the ascending union of minterm indices covered by the
// cover, deduplicated across cubes.
// Complexity: O(c·2^f·n) — bounded by the enumeration of each cube.
func (cv Cover) Minterms() []int {
	seen := make(map[int]struct{})
	for _, c := range cv {
		for _, m := range c.Minterms() {
			seen[m] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Ints(out)

	return out
}

// Clone returns an independent copy of the cover. Cubes themselves are
// immutable, so a shallow cube copy suffices.
func (cv Cover) Clone() Cover {
	out := make(Cover, len(cv))
	copy(out, cv)

	return out
}

// Sorted returns a copy of the cover ordered by ascending symbol
// sequence. Used to canonicalize results for deterministic output.
// Complexity: O(c log c).
func (cv Cover) Sorted() Cover {
	out := cv.Clone()
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}
