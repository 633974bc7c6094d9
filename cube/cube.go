// Package cube — the ternary implicant algebra.
//
// A Cube stores one Symbol per variable. All operations are pure: a Cube
// is never mutated after construction, so values may be shared freely.
package cube

import (
	"sort"
	"strings"
)

// Cube is an immutable ternary implicant of fixed width.
// The zero value is an empty cube of width 0 and is not a valid operand.
type Cube struct {
	syms string // one of '0', '1', 'X' per position; position 0 = MSB
}

// FromMinterm builds the fully specified cube of width n covering exactly
// the single minterm m. Position 0 holds the most significant bit of m.
// Returns ErrVariableCount or ErrIndexRange on invalid input.
// Complexity: O(n).
func FromMinterm(m, n int) (Cube, error) {
	if n < MinVariables || n > MaxVariables {
		return Cube{}, ErrVariableCount
	}
	if m < 0 || m >= 1<<uint(n) {
		return Cube{}, ErrIndexRange
	}
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		if m&(1<<uint(n-1-i)) != 0 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}

	return Cube{syms: string(b)}, nil
}

// Parse builds a cube from its string form. Accepted runes are '0', '1',
// 'X' and '-' (alias for 'X'). Returns ErrVariableCount when the width is
// out of range, ErrSymbol on any other rune.
// Complexity: O(n).
func Parse(s string) (Cube, error) {
	if len(s) < MinVariables || len(s) > MaxVariables {
		return Cube{}, ErrVariableCount
	}
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0', '1', 'X':
			b[i] = s[i]
		case '-':
			b[i] = 'X'
		default:
			return Cube{}, ErrSymbol
		}
	}

	return Cube{syms: string(b)}, nil
}

// Width returns the number of variables (symbol positions) of c.
func (c Cube) Width() int { return len(c.syms) }

// Symbol returns the symbol at position i (0 = most significant bit).
func (c Cube) Symbol(i int) Symbol {
	switch c.syms[i] {
	case '0':
		return Zero
	case '1':
		return One
	default:
		return X
	}
}

// Key returns the canonical "01X" string of c. Two cubes are the same cube
// iff their keys are equal, so Key is suitable for map-based deduplication.
func (c Cube) Key() string { return c.syms }

// String implements fmt.Stringer; identical to Key.
func (c Cube) String() string { return c.syms }

// Equal reports position-for-position symbol equality. X never equals a
// fixed symbol.
func (c Cube) Equal(other Cube) bool { return c.syms == other.syms }

// Literals counts the fixed (non-X) positions of c. Fewer literals means
// a broader cube and a simpler product term.
// Complexity: O(n).
func (c Cube) Literals() int {
	lits := 0
	for i := 0; i < len(c.syms); i++ {
		if c.syms[i] != 'X' {
			lits++
		}
	}

	return lits
}

// Ones counts the positions fixed to 1. Quine–McCluskey buckets cubes by
// this value during level-by-level merging.
// Complexity: O(n).
func (c Cube) Ones() int {
	ones := 0
	for i := 0; i < len(c.syms); i++ {
		if c.syms[i] == '1' {
			ones++
		}
	}

	return ones
}

// Covers reports whether minterm m matches every fixed position of c.
// Free (X) positions match both bit values.
// Complexity: O(n).
func (c Cube) Covers(m int) bool {
	n := len(c.syms)
	if m < 0 || m >= 1<<uint(n) {
		return false
	}
	var bit byte
	for i := 0; i < n; i++ {
		if c.syms[i] == 'X' {
			continue
		}
		bit = '0'
		if m&(1<<uint(n-1-i)) != 0 {
			bit = '1'
		}
		if c.syms[i] != bit {
			return false
		}
	}

	return true
}

// Distance counts the positions where one cube is fixed to 0 and the
// other to 1. X-versus-fixed positions do not contribute.
// Returns ErrCubeWidth when the widths differ.
// Complexity: O(n).
func (c Cube) Distance(other Cube) (int, error) {
	if len(c.syms) != len(other.syms) {
		return 0, ErrCubeWidth
	}
	d := 0
	for i := 0; i < len(c.syms); i++ {
		if c.syms[i] != 'X' && other.syms[i] != 'X' && c.syms[i] != other.syms[i] {
			d++
		}
	}

	return d, nil
}

// Mergeable reports whether c and other are adjacent: same width, exactly
// one opposing fixed position, and identical X positions elsewhere. Only
// adjacent cubes may be merged into a single broader cube.
// Complexity: O(n).
func (c Cube) Mergeable(other Cube) bool {
	if len(c.syms) != len(other.syms) {
		return false
	}
	diff := 0
	for i := 0; i < len(c.syms); i++ {
		if c.syms[i] == other.syms[i] {
			continue
		}
		// Any X-versus-fixed mismatch rules the pair out entirely.
		if c.syms[i] == 'X' || other.syms[i] == 'X' {
			return false
		}
		diff++
		if diff > 1 {
			return false
		}
	}

	return diff == 1
}

// Merge combines two adjacent cubes into the broader cube with the single
// differing position freed to X. Returns ErrCubeWidth on width mismatch
// and ErrNotAdjacent when the cubes are not mergeable.
// Complexity: O(n).
func (c Cube) Merge(other Cube) (Cube, error) {
	if len(c.syms) != len(other.syms) {
		return Cube{}, ErrCubeWidth
	}
	if !c.Mergeable(other) {
		return Cube{}, ErrNotAdjacent
	}
	b := []byte(c.syms)
	for i := 0; i < len(b); i++ {
		if c.syms[i] != other.syms[i] {
			b[i] = 'X'
		}
	}

	return Cube{syms: string(b)}, nil
}

// Contains reports whether c covers every minterm of other (c is equal or
// broader): wherever c is fixed, other must be fixed to the same value.
// Complexity: O(n).
func (c Cube) Contains(other Cube) bool {
	if len(c.syms) != len(other.syms) {
		return false
	}
	for i := 0; i < len(c.syms); i++ {
		if c.syms[i] != 'X' && c.syms[i] != other.syms[i] {
			return false
		}
	}

	return true
}

// Intersect returns the cube covering exactly the minterms covered by both
// c and other, and false when the intersection is empty (some position is
// fixed to 0 in one cube and 1 in the other).
// Complexity: O(n).
func (c Cube) Intersect(other Cube) (Cube, bool) {
	if len(c.syms) != len(other.syms) {
		return Cube{}, false
	}
	b := make([]byte, len(c.syms))
	for i := 0; i < len(c.syms); i++ {
		switch {
		case c.syms[i] == other.syms[i]:
			b[i] = c.syms[i]
		case c.syms[i] == 'X':
			b[i] = other.syms[i]
		case other.syms[i] == 'X':
			b[i] = c.syms[i]
		default:
			return Cube{}, false // opposing fixed bits
		}
	}

	return Cube{syms: string(b)}, true
}

// WithSymbol returns a copy of c with position i replaced by s.
// Minimizers use it to raise a position to X (EXPAND) or pin it back
// (REDUCE) without ever mutating the receiver.
// Complexity: O(n).
func (c Cube) WithSymbol(i int, s Symbol) Cube {
	b := []byte(c.syms)
	b[i] = s.byte()

	return Cube{syms: string(b)}
}

// IsFull reports whether every position of c is free, i.e. c covers the
// entire 2^n minterm space (the constant-1 term).
func (c Cube) IsFull() bool {
	return strings.Count(c.syms, "X") == len(c.syms) && len(c.syms) > 0
}

// Supercube returns the smallest cube of width n covering every index in
// minterms: positions where all indices agree stay fixed, all others go
// free. Returns ErrVariableCount or ErrIndexRange on invalid input, and
// ErrIndexRange when minterms is empty (no cube covers nothing).
// Complexity: O(k·n).
func Supercube(minterms []int, n int) (Cube, error) {
	if n < MinVariables || n > MaxVariables {
		return Cube{}, ErrVariableCount
	}
	if len(minterms) == 0 {
		return Cube{}, ErrIndexRange
	}
	sc, err := FromMinterm(minterms[0], n)
	if err != nil {
		return Cube{}, err
	}
	b := []byte(sc.syms)
	var bit byte
	for _, m := range minterms[1:] {
		if m < 0 || m >= 1<<uint(n) {
			return Cube{}, ErrIndexRange
		}
		for i := 0; i < n; i++ {
			if b[i] == 'X' {
				continue
			}
			bit = '0'
			if m&(1<<uint(n-1-i)) != 0 {
				bit = '1'
			}
			if b[i] != bit {
				b[i] = 'X'
			}
		}
	}

	return Cube{syms: string(b)}, nil
}

// Minterms enumerates, in ascending order, every minterm index covered
// by c.
// Complexity: O(2^f · n) where f is the number of free positions.
func (c Cube) Minterms() []int {
	n := len(c.syms)
	base := 0
	free := make([]int, 0, n)
	for i := 0; i < n; i++ {
		switch c.syms[i] {
		case '1':
			base |= 1 << uint(n-1-i)
		case 'X':
			free = append(free, n-1-i)
		}
	}
	out := make([]int, 0, 1<<uint(len(free)))
	for mask := 0; mask < 1<<uint(len(free)); mask++ {
		m := base
		for j, pos := range free {
			if mask&(1<<uint(j)) != 0 {
				m |= 1 << uint(pos)
			}
		}
		out = append(out, m)
	}
	// Free positions were collected MSB-to-LSB, so insertion order is not
	// ascending; sort once at the end.
	sort.Ints(out)

	return out
}
