// Package espresso defines options, result and sentinel errors for the
// heuristic minimizer.
package espresso

import (
	"errors"

	"github.com/gagradebnath/DLD/cube"
)

// Sentinel errors for heuristic minimization.
var (
	// ErrNilFunction indicates a nil *cube.Function argument.
	ErrNilFunction = errors.New("espresso: function must be non-nil")
	// ErrIterations indicates MaxIterations < 1 in Options.
	ErrIterations = errors.New("espresso: MaxIterations must be at least 1")
	// ErrCoverWidth indicates a starting cube whose width differs from the
	// function's variable count.
	ErrCoverWidth = errors.New("espresso: starting cube width does not match function")
	// ErrCoverRange indicates a starting cube covering an off-set minterm
	// (an index where the function must evaluate to 0).
	ErrCoverRange = errors.New("espresso: starting cover intersects the off-set")
	// ErrCoverShort indicates a starting cover leaving some true minterm
	// uncovered.
	ErrCoverShort = errors.New("espresso: starting cover misses a true minterm")
)

// DefaultMaxIterations is the default EXPAND→IRREDUNDANT→REDUCE cycle cap.
const DefaultMaxIterations = 20

// Options bounds the heuristic loop.
//
// Fields:
//   - MaxIterations — hard cap on full EXPAND→IRREDUNDANT→REDUCE cycles.
//     The cost-based stopping test usually ends the loop well before the
//     cap; hitting the cap sets Result.Truncated.
type Options struct {
	MaxIterations int
}

// DefaultOptions returns Options with MaxIterations=DefaultMaxIterations.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// validate rejects a non-positive iteration cap.
func (o Options) validate() error {
	if o.MaxIterations < 1 {
		return ErrIterations
	}

	return nil
}

// Result holds the outcome of heuristic minimization.
type Result struct {
	// Cover is the best cover observed, canonically ordered by ascending
	// symbol sequence. Owned by the caller.
	Cover cube.Cover

	// Iterations is the number of full cycles actually run, including the
	// final cycle that failed the cost test (if any).
	Iterations int

	// Truncated reports that MaxIterations ended the loop while cycles
	// were still improving; Cover remains the best cover found so far.
	Truncated bool
}
