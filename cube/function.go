package cube

import "sort"

// Function is an immutable single-output Boolean function over n
// variables, given by the set of minterm indices where it evaluates to 1
// and a disjoint set of don't-care indices whose output is unconstrained.
//
// Minterms and don't-cares are interchangeable as grouping material for
// implicant generation; only true minterms must be covered by a result.
type Function struct {
	n         int
	minterms  []int // sorted, deduplicated
	dontCares []int // sorted, deduplicated, disjoint from minterms
}

// NewFunction constructs a Function over n variables.
// Inputs are deep-copied, deduplicated and sorted, so the caller may reuse
// or mutate its slices afterwards.
//
// Errors:
//   - ErrVariableCount — n outside [MinVariables, MaxVariables].
//   - ErrIndexRange    — any index outside [0, 2^n).
//   - ErrIndexOverlap  — an index present in both sets.
//
// Complexity: O(k log k) for k = len(minterms)+len(dontCares).
func NewFunction(n int, minterms, dontCares []int) (*Function, error) {
	if n < MinVariables || n > MaxVariables {
		return nil, ErrVariableCount
	}
	limit := 1 << uint(n)

	on, err := normalizeIndices(minterms, limit)
	if err != nil {
		return nil, err
	}
	dc, err := normalizeIndices(dontCares, limit)
	if err != nil {
		return nil, err
	}
	// Both slices are sorted; a single linear sweep detects overlap.
	for i, j := 0, 0; i < len(on) && j < len(dc); {
		switch {
		case on[i] < dc[j]:
			i++
		case on[i] > dc[j]:
			j++
		default:
			return nil, ErrIndexOverlap
		}
	}

	return &Function{n: n, minterms: on, dontCares: dc}, nil
}

// normalizeIndices validates, deduplicates and sorts a copied index slice.
func normalizeIndices(in []int, limit int) ([]int, error) {
	out := make([]int, 0, len(in))
	seen := make(map[int]struct{}, len(in))
	for _, idx := range in {
		if idx < 0 || idx >= limit {
			return nil, ErrIndexRange
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	sort.Ints(out)

	return out, nil
}

// Variables returns the variable count n.
func (f *Function) Variables() int { return f.n }

// MustCover returns the true minterm indices — the set every valid cover
// must include — in ascending order. The slice is a fresh copy.
func (f *Function) MustCover() []int {
	out := make([]int, len(f.minterms))
	copy(out, f.minterms)

	return out
}

// DontCares returns the don't-care indices in ascending order.
// The slice is a fresh copy.
func (f *Function) DontCares() []int {
	out := make([]int, len(f.dontCares))
	copy(out, f.dontCares)

	return out
}

// Groupable returns minterms ∪ don't-cares in ascending order: the full
// set of indices implicant generation may group together.
// The slice is a fresh copy.
// Complexity: O(k) merge of two sorted sets.
func (f *Function) Groupable() []int {
	out := make([]int, 0, len(f.minterms)+len(f.dontCares))
	i, j := 0, 0
	for i < len(f.minterms) && j < len(f.dontCares) {
		if f.minterms[i] < f.dontCares[j] {
			out = append(out, f.minterms[i])
			i++
		} else {
			out = append(out, f.dontCares[j])
			j++
		}
	}
	out = append(out, f.minterms[i:]...)
	out = append(out, f.dontCares[j:]...)

	return out
}

// IsGroupable reports whether index m may participate in a grouping,
// i.e. m is a minterm or a don't-care.
// Complexity: O(log k).
func (f *Function) IsGroupable(m int) bool {
	return containsSorted(f.minterms, m) || containsSorted(f.dontCares, m)
}

// IsMinterm reports whether m is a true minterm of f.
// Complexity: O(log k).
func (f *Function) IsMinterm(m int) bool {
	return containsSorted(f.minterms, m)
}

// IsTautology reports whether every index of the 2^n space is groupable
// and at least one true minterm exists, i.e. the function may be realized
// as the constant 1.
func (f *Function) IsTautology() bool {
	return len(f.minterms) > 0 && len(f.minterms)+len(f.dontCares) == 1<<uint(f.n)
}

// containsSorted is a binary-search membership test over a sorted slice.
func containsSorted(s []int, v int) bool {
	i := sort.SearchInts(s, v)

	return i < len(s) && s[i] == v
}
