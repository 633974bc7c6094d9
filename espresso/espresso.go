// Package espresso — the EXPAND / IRREDUNDANT / REDUCE loop.
package espresso

import (
	"sort"

	"github.com/gagradebnath/DLD/cube"
)

// Minimize heuristically minimizes fn starting from the canonical cover:
// one fully specified cube per true minterm.
//
// Returns the best cover observed, the number of cycles run, and whether
// the iteration cap (rather than the cost test) ended the loop.
// Errors: ErrNilFunction, ErrIterations.
func Minimize(fn *cube.Function, opts Options) (Result, error) {
	if fn == nil {
		return Result{}, ErrNilFunction
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	must := fn.MustCover()
	if len(must) == 0 {
		// Constant-0 function: the empty cover is already minimal.
		return Result{}, nil
	}

	start := make(cube.Cover, 0, len(must))
	for _, m := range must {
		c, err := cube.FromMinterm(m, fn.Variables())
		if err != nil {
			return Result{}, err
		}
		start = append(start, c)
	}

	return run(fn, start, opts), nil
}

// MinimizeFrom runs the same loop over a caller-supplied starting cover,
// letting callers resume from a previous result or a domain-specific
// seed.
//
// The starting cover must be sound: right cube widths, no off-set
// coverage, every true minterm covered.
// Errors: ErrNilFunction, ErrIterations, ErrCoverWidth, ErrCoverRange,
// ErrCoverShort.
func MinimizeFrom(fn *cube.Function, start cube.Cover, opts Options) (Result, error) {
	if fn == nil {
		return Result{}, ErrNilFunction
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	must := fn.MustCover()
	if len(must) == 0 && len(start) == 0 {
		return Result{}, nil
	}

	for _, c := range start {
		if c.Width() != fn.Variables() {
			return Result{}, ErrCoverWidth
		}
		for _, m := range c.Minterms() {
			if !fn.IsGroupable(m) {
				return Result{}, ErrCoverRange
			}
		}
	}
	if !start.CoversAll(must) {
		return Result{}, ErrCoverShort
	}

	return run(fn, start, opts), nil
}

// run is the shared minimization loop. The cost of the cover after each
// EXPAND+IRREDUNDANT pair is compared against the best seen: improvement
// commits the cover and REDUCE prepares the next cycle; anything else
// ends the loop with the previous best intact, so the reported cost
// sequence is non-increasing.
func run(fn *cube.Function, start cube.Cover, opts Options) Result {
	e := newEngine(fn)

	best := start.Sorted()
	bestCost := best.LiteralCost()

	cur := start.Clone()
	iters := 0
	truncated := false

	for iters < opts.MaxIterations {
		iters++
		cur = e.expand(cur)
		cur = e.irredundant(cur)

		cost := cur.LiteralCost()
		if cost >= bestCost {
			break // cost test: this cycle did not improve; best stands
		}
		best, bestCost = cur.Sorted(), cost
		if iters == opts.MaxIterations {
			truncated = true // cap ended the loop while still improving

			break
		}
		cur = e.reduce(cur)
	}

	return Result{Cover: best, Iterations: iters, Truncated: truncated}
}

// engine holds the per-call care-set geometry. Discarded on return.
type engine struct {
	n    int
	must []int
	care []bool // index → minterm or don't-care (growth stays inside)
}

func newEngine(fn *cube.Function) *engine {
	e := &engine{
		n:    fn.Variables(),
		must: fn.MustCover(),
		care: make([]bool, 1<<uint(fn.Variables())),
	}
	for _, m := range fn.Groupable() {
		e.care[m] = true
	}

	return e
}

// insideCare reports whether every minterm of c is a minterm or
// don't-care of the function, i.e. c never covers the off-set.
func (e *engine) insideCare(c cube.Cube) bool {
	for _, m := range c.Minterms() {
		if !e.care[m] {
			return false
		}
	}

	return true
}

// expand grows each cube maximally: fixed positions are raised to X one
// at a time while the cube stays inside the care set. Among valid raises
// the one subsuming the most other live cubes wins, lowest position index
// on ties. Cubes subsumed by a grown cube are dropped immediately.
func (e *engine) expand(cv cube.Cover) cube.Cover {
	cur := cv.Clone()
	dead := make([]bool, len(cur))

	var p, j int
	for i := range cur {
		if dead[i] {
			continue
		}
		c := cur[i]
		for {
			bestPos, bestScore := -1, -1
			for p = 0; p < e.n; p++ {
				if c.Symbol(p) == cube.X {
					continue
				}
				g := c.WithSymbol(p, cube.X)
				if !e.insideCare(g) {
					continue
				}
				score := 0
				for j = range cur {
					if j == i || dead[j] {
						continue
					}
					if g.Contains(cur[j]) && !c.Contains(cur[j]) {
						score++
					}
				}
				if score > bestScore {
					bestPos, bestScore = p, score
				}
			}
			if bestPos < 0 {
				break // no valid raise left: c is maximally expanded
			}
			c = c.WithSymbol(bestPos, cube.X)
		}
		cur[i] = c
		for j = range cur {
			if j != i && !dead[j] && c.Contains(cur[j]) {
				dead[j] = true
			}
		}
	}

	out := make(cube.Cover, 0, len(cur))
	for i := range cur {
		if !dead[i] {
			out = append(out, cur[i])
		}
	}

	return out
}

// irredundant keeps cubes largest-first (fewest literals, then symbol
// order): a cube enters the result only if it covers a true minterm the
// cubes kept so far do not; a final sweep, smallest cube first, drops
// anything the rest of the result still covers in full.
func (e *engine) irredundant(cv cube.Cover) cube.Cover {
	ord := cv.Clone()
	sort.Slice(ord, func(i, j int) bool {
		if ord[i].Literals() != ord[j].Literals() {
			return ord[i].Literals() < ord[j].Literals()
		}

		return ord[i].Key() < ord[j].Key()
	})

	covered := make([]bool, 1<<uint(e.n))
	kept := make(cube.Cover, 0, len(ord))
	for _, c := range ord {
		contributes := false
		for _, m := range e.must {
			if !covered[m] && c.Covers(m) {
				contributes = true
			}
		}
		if !contributes {
			continue
		}
		kept = append(kept, c)
		for _, m := range e.must {
			if c.Covers(m) {
				covered[m] = true
			}
		}
	}

	// Final sweep from the smallest cube up: the greedy pass only checked
	// against larger cubes, a cube may still be jointly covered by the
	// full remainder.
	for i := len(kept) - 1; i >= 0; i-- {
		if e.redundant(kept[i], kept, i) {
			kept = append(kept[:i], kept[i+1:]...)
		}
	}

	return kept
}

// redundant reports whether every true minterm of kept[skip] is covered
// by some other cube of kept.
func (e *engine) redundant(c cube.Cube, kept cube.Cover, skip int) bool {
	for _, m := range e.must {
		if !c.Covers(m) {
			continue
		}
		other := false
		for j := range kept {
			if j != skip && kept[j].Covers(m) {
				other = true

				break
			}
		}
		if !other {
			return false
		}
	}

	return true
}

// reduce shrinks each cube, in sequence against the live cover, to the
// supercube of the true minterms only it covers. Shared minterms migrate
// to whichever later cube still holds them, so total coverage is
// preserved while every cube gains slack for the next expand pass.
func (e *engine) reduce(cv cube.Cover) cube.Cover {
	out := cv.Clone()

	for i := range out {
		var unique []int
		for _, m := range e.must {
			if !out[i].Covers(m) {
				continue
			}
			elsewhere := false
			for j := range out {
				if j != i && out[j].Covers(m) {
					elsewhere = true

					break
				}
			}
			if !elsewhere {
				unique = append(unique, m)
			}
		}
		if len(unique) == 0 {
			continue // nothing held uniquely: leave the cube as-is
		}
		sc, err := cube.Supercube(unique, e.n)
		if err != nil {
			continue
		}
		out[i] = sc
	}

	return out
}
