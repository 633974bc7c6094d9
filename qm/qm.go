// Package qm — prime-implicant generation and the minimization pipeline.
package qm

import (
	"github.com/gagradebnath/DLD/cube"
)

// Minimize returns a minimum sum-of-products cover of fn.
//
// The pipeline is: prime-implicant generation (iterative merging),
// covering-table construction over true minterms, essential-prime
// extraction, then exact branch-and-bound on the residual table under
// opts budgets. See the package documentation for the full outline.
//
// The returned cover is canonically ordered and owned by the caller.
// Errors: ErrNilFunction, ErrBudget.
func Minimize(fn *cube.Function, opts Options) (Result, error) {
	if fn == nil {
		return Result{}, ErrNilFunction
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	must := fn.MustCover()
	if len(must) == 0 {
		// Constant-0 function: nothing to cover, nothing to generate.
		return Result{}, nil
	}

	primes := generatePrimes(fn)

	// Covering table: rows = primes covering at least one true minterm,
	// columns = true minterms. Construction guarantees every column has a
	// covering row (each minterm survives inside some prime).
	tbl := newCoverTable(primes, must)

	essential := tbl.extractEssential()

	var truncated bool
	if tbl.uncovered() > 0 {
		eng := newCoverEngine(tbl, opts)
		eng.search()
		truncated = eng.truncated
		tbl.selectRows(eng.best)
	}

	chosen := make(cube.Cover, 0, len(tbl.selected))
	for _, r := range tbl.selected {
		chosen = append(chosen, tbl.rowCube(r))
	}

	essentialCubes := make([]cube.Cube, len(essential))
	for i, r := range essential {
		essentialCubes[i] = tbl.rowCube(r)
	}

	return Result{
		Cover:     chosen.Sorted(),
		Primes:    primes,
		Essential: essentialCubes,
		Truncated: truncated,
	}, nil
}

// PrimeImplicants returns every prime implicant of fn in deterministic
// first-encountered order. Don't-cares participate in grouping, so the
// result may include primes covering no true minterm.
// Errors: ErrNilFunction.
func PrimeImplicants(fn *cube.Function) ([]cube.Cube, error) {
	if fn == nil {
		return nil, ErrNilFunction
	}

	return generatePrimes(fn), nil
}

// workCube is one cube of the current merge level together with its
// "combined" flag: a cube that merged with any partner is not prime.
type workCube struct {
	c        cube.Cube
	combined bool
}

// generatePrimes runs the level-by-level tabular merge.
//
// Level 0 holds one fully specified cube per groupable index, bucketed by
// the count of 1-fixed positions. At each level every cube of bucket k is
// tried against every cube of bucket k+1 (only such pairs can be at
// distance 1); merged results populate the next level, deduplicated by
// symbol sequence. Cubes never flagged combined are collected as primes,
// deduplicated, in deterministic order. The buckets live only for the
// duration of one call.
func generatePrimes(fn *cube.Function) []cube.Cube {
	n := fn.Variables()

	buckets := make([][]workCube, n+1)
	for _, m := range fn.Groupable() {
		c, err := cube.FromMinterm(m, n)
		if err != nil {
			// Indices were validated at Function construction.
			continue
		}
		buckets[c.Ones()] = append(buckets[c.Ones()], workCube{c: c})
	}

	var primes []cube.Cube
	primeSeen := make(map[string]struct{})

	for {
		next := make([][]workCube, n+1)
		nextSeen := make(map[string]struct{})
		merged := false

		var k, i, j int
		for k = 0; k < n; k++ {
			for i = range buckets[k] {
				for j = range buckets[k+1] {
					a, b := &buckets[k][i], &buckets[k+1][j]
					if !a.c.Mergeable(b.c) {
						continue
					}
					mc, err := a.c.Merge(b.c)
					if err != nil {
						continue
					}
					a.combined, b.combined = true, true
					merged = true
					if _, dup := nextSeen[mc.Key()]; dup {
						continue
					}
					nextSeen[mc.Key()] = struct{}{}
					next[mc.Ones()] = append(next[mc.Ones()], workCube{c: mc})
				}
			}
		}

		// Every cube of this level that found no partner is prime.
		for k = 0; k <= n; k++ {
			for _, w := range buckets[k] {
				if w.combined {
					continue
				}
				if _, dup := primeSeen[w.c.Key()]; dup {
					continue
				}
				primeSeen[w.c.Key()] = struct{}{}
				primes = append(primes, w.c)
			}
		}

		if !merged {
			return primes
		}
		buckets = next
	}
}
