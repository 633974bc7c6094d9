// Package qm defines options, result and sentinel errors for the exact
// Quine–McCluskey minimizer.
package qm

import (
	"errors"
	"time"

	"github.com/gagradebnath/DLD/cube"
)

// Sentinel errors for exact minimization.
var (
	// ErrNilFunction indicates a nil *cube.Function argument.
	ErrNilFunction = errors.New("qm: function must be non-nil")
	// ErrBudget indicates a negative node or time budget in Options.
	ErrBudget = errors.New("qm: search budget must be non-negative")
)

// DefaultMaxNodes is the default branch-and-bound node budget. Generous
// for n ≤ 20 covering tables while keeping worst-case latency bounded.
const DefaultMaxNodes = 1 << 20

// Options bounds the exact covering search.
//
// Fields:
//   - MaxNodes  — maximum branch-and-bound nodes visited; 0 means
//     unlimited. On exhaustion the best cover found so far is returned
//     with Result.Truncated set.
//   - TimeLimit — soft wall-clock budget for the covering search; 0 means
//     unlimited. Checked sparsely to keep per-node overhead negligible.
type Options struct {
	MaxNodes  int
	TimeLimit time.Duration
}

// DefaultOptions returns Options with MaxNodes=DefaultMaxNodes and no
// time limit.
func DefaultOptions() Options {
	return Options{MaxNodes: DefaultMaxNodes}
}

// validate rejects negative budgets.
func (o Options) validate() error {
	if o.MaxNodes < 0 || o.TimeLimit < 0 {
		return ErrBudget
	}

	return nil
}

// Result holds the outcome of exact minimization.
type Result struct {
	// Cover is the chosen minimum cover, canonically ordered by ascending
	// symbol sequence. Owned by the caller; the engine keeps no reference.
	Cover cube.Cover

	// Primes is every prime implicant generated, in deterministic
	// first-encountered order (including primes that cover only
	// don't-cares and therefore never enter the covering table).
	Primes []cube.Cube

	// Essential is the subset of Primes forced into every valid cover
	// because some minterm is covered by no other prime.
	Essential []cube.Cube

	// Truncated reports that the covering search exhausted its node or
	// time budget; Cover is then the best cover found so far and remains
	// a valid (sound) cover, just not necessarily minimum.
	Truncated bool
}
