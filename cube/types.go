// Package cube defines core types, limits, and sentinel errors for the
// cube subpackage of github.com/gagradebnath/DLD.
package cube

import "errors"

// Variable-count limits. The minterm space is 2^n, so anything past
// MaxVariables is impractical to enumerate exactly.
const (
	// MinVariables is the smallest supported variable count.
	MinVariables = 2
	// MaxVariables is the largest supported variable count.
	MaxVariables = 20
)

// Sentinel errors for cube, function, and formatting operations.
var (
	// ErrVariableCount indicates a variable count outside [MinVariables, MaxVariables].
	ErrVariableCount = errors.New("cube: variable count out of range")
	// ErrIndexRange indicates a minterm or don't-care index outside [0, 2^n).
	ErrIndexRange = errors.New("cube: minterm index out of range")
	// ErrIndexOverlap indicates an index listed both as minterm and as don't-care.
	ErrIndexOverlap = errors.New("cube: index present in both minterm and don't-care sets")
	// ErrCubeWidth indicates an operation over cubes of differing widths.
	ErrCubeWidth = errors.New("cube: cubes have differing variable counts")
	// ErrNotAdjacent indicates Merge on cubes whose distance is not exactly 1.
	ErrNotAdjacent = errors.New("cube: cubes are not adjacent (distance != 1)")
	// ErrSymbol indicates a Parse input rune outside the "01X-" alphabet.
	ErrSymbol = errors.New("cube: invalid cube symbol")
	// ErrNameCount indicates a variable-name slice not matching the cube width.
	ErrNameCount = errors.New("cube: variable name count does not match cube width")
)

// Symbol is one ternary position of a cube.
type Symbol uint8

const (
	// Zero fixes the variable to 0 (the literal appears complemented).
	Zero Symbol = iota
	// One fixes the variable to 1 (the literal appears uncomplemented).
	One
	// X leaves the variable free (the literal is absent from the term).
	X
)

// byte returns the canonical character for s.
func (s Symbol) byte() byte {
	switch s {
	case Zero:
		return '0'
	case One:
		return '1'
	default:
		return 'X'
	}
}

// String implements fmt.Stringer for a single symbol.
func (s Symbol) String() string { return string(s.byte()) }
