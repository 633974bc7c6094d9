// Package qm — exact minimum set cover by Branch-and-Bound (BnB).
//
// coverEngine enumerates row subsets of the residual covering table via a
// depth-first BnB search with deterministic branching and a node/time
// budget.
//
// Rationale (succinct):
//  1. An initial incumbent is seeded greedily (most-new-columns row
//     first); the search then only has to beat it, which prunes hard and
//     guarantees a valid cover even when the budget expires immediately.
//  2. Branching: among uncovered columns, the one with the fewest
//     covering rows (lowest index tiebreak) — the tightest constraint
//     fans out least.
//  3. Candidate order within a column: fewest literals first, then
//     first-encountered row order. Together with incumbent acceptance
//     (strictly fewer rows, or equal rows and strictly fewer literals)
//     this fixes the documented tie-break: cube count, then literal
//     count, then encounter order.
//  4. Pruning: a partial selection that cannot reach fewer-or-equal rows
//     than the incumbent is abandoned.
//  5. Budgets: every node counts against Options.MaxNodes; the soft time
//     limit is checked sparsely (every 1024 node events) to keep
//     overhead negligible.
//
// Complexity: worst case exponential in residual rows (exact search);
// practical speed comes from essential-row reduction and pruning.
// Memory: O(rows + cols) search state on top of the table.
package qm

import (
	"sort"
	"time"
)

// coverEngine holds all search data and policies for one residual table.
// A dedicated engine struct keeps hot-path state predictable and testing
// simple.
type coverEngine struct {
	// Residual shape
	cols    int     // number of uncovered columns
	rowCols [][]int // per table row: residual column ids it covers (nil = irrelevant row)
	rowLits []int   // per table row: literal count
	colCand [][]int // per residual column: candidate rows, (lits, row) order

	// Budgets
	maxNodes    int
	nodes       int
	useDeadline bool
	deadline    time.Time
	steps       int

	// Current search state
	sel      []int // selected rows, in selection order
	selLits  int
	colCover []int // per residual column: count of selected rows covering it
	nCovered int

	// Incumbent
	best      []int
	bestLits  int
	truncated bool
}

// newCoverEngine projects the table's uncovered columns into a dense
// residual instance and precomputes deterministic candidate orders.
func newCoverEngine(t *coverTable, opts Options) *coverEngine {
	e := &coverEngine{
		maxNodes: opts.MaxNodes,
		rowCols:  make([][]int, len(t.rows)),
		rowLits:  make([]int, len(t.rows)),
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Dense ids for residual columns.
	colID := make([]int, len(t.covered))
	for c := range t.covered {
		colID[c] = -1
		if !t.covered[c] {
			colID[c] = e.cols
			e.cols++
		}
	}

	for ri := range t.rows {
		e.rowLits[ri] = t.rows[ri].lits
		for _, c := range t.rows[ri].cols {
			if colID[c] >= 0 {
				e.rowCols[ri] = append(e.rowCols[ri], colID[c])
			}
		}
	}

	e.colCand = make([][]int, e.cols)
	for c := range t.covered {
		if colID[c] < 0 {
			continue
		}
		cand := make([]int, 0, len(t.colRows[c]))
		for _, ri := range t.colRows[c] {
			if len(e.rowCols[ri]) > 0 {
				cand = append(cand, ri)
			}
		}
		sort.Slice(cand, func(i, j int) bool {
			if e.rowLits[cand[i]] != e.rowLits[cand[j]] {
				return e.rowLits[cand[i]] < e.rowLits[cand[j]]
			}

			return cand[i] < cand[j]
		})
		e.colCand[colID[c]] = cand
	}

	e.colCover = make([]int, e.cols)

	return e
}

// search seeds a greedy incumbent, then runs the exact DFS under budget.
// On return e.best is a valid residual cover: optimal unless e.truncated.
func (e *coverEngine) search() {
	e.seedGreedy()
	e.dfs()
}

// seedGreedy builds the initial incumbent: repeatedly take the row
// covering the most still-uncovered columns (ties: fewer literals, lower
// row index). Every column has a candidate, so the greedy pass always
// completes.
func (e *coverEngine) seedGreedy() {
	covered := make([]bool, e.cols)
	nCov := 0
	var pick []int
	lits := 0

	for nCov < e.cols {
		bestRow, bestGain := -1, 0
		for ri := range e.rowCols {
			if len(e.rowCols[ri]) == 0 {
				continue
			}
			gain := 0
			for _, c := range e.rowCols[ri] {
				if !covered[c] {
					gain++
				}
			}
			if gain == 0 {
				continue
			}
			if gain > bestGain ||
				(gain == bestGain && e.rowLits[ri] < e.rowLits[bestRow]) {
				bestRow, bestGain = ri, gain
			}
		}
		if bestRow < 0 {
			break // unreachable: table construction guarantees coverage
		}
		pick = append(pick, bestRow)
		lits += e.rowLits[bestRow]
		for _, c := range e.rowCols[bestRow] {
			if !covered[c] {
				covered[c] = true
				nCov++
			}
		}
	}

	e.best = pick
	e.bestLits = lits
}

// deadlineHit performs a rare deadline test (every 1024 node events).
func (e *coverEngine) deadlineHit() bool {
	e.steps++
	if !e.useDeadline || (e.steps&1023) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// choose commits row r to the current selection.
func (e *coverEngine) choose(r int) {
	e.sel = append(e.sel, r)
	e.selLits += e.rowLits[r]
	for _, c := range e.rowCols[r] {
		e.colCover[c]++
		if e.colCover[c] == 1 {
			e.nCovered++
		}
	}
}

// unchoose rolls back the most recent choose(r).
func (e *coverEngine) unchoose(r int) {
	e.sel = e.sel[:len(e.sel)-1]
	e.selLits -= e.rowLits[r]
	for _, c := range e.rowCols[r] {
		e.colCover[c]--
		if e.colCover[c] == 0 {
			e.nCovered--
		}
	}
}

// pickColumn returns the uncovered column with the fewest candidate rows,
// lowest column id on ties.
func (e *coverEngine) pickColumn() int {
	best, bestCand := -1, 0
	for c := 0; c < e.cols; c++ {
		if e.colCover[c] > 0 {
			continue
		}
		if best < 0 || len(e.colCand[c]) < bestCand {
			best, bestCand = c, len(e.colCand[c])
		}
	}

	return best
}

// dfs is the core search: branch on the tightest column, prune on the
// incumbent, honor budgets. Once truncated, the whole stack unwinds.
func (e *coverEngine) dfs() {
	if e.truncated {
		return
	}
	e.nodes++
	if e.maxNodes > 0 && e.nodes > e.maxNodes {
		e.truncated = true

		return
	}
	if e.deadlineHit() {
		e.truncated = true

		return
	}

	if e.nCovered == e.cols {
		if len(e.sel) < len(e.best) ||
			(len(e.sel) == len(e.best) && e.selLits < e.bestLits) {
			e.best = append(e.best[:0:0], e.sel...)
			e.bestLits = e.selLits
		}

		return
	}

	// One more row at minimum; abandon selections that cannot tie the
	// incumbent.
	if len(e.sel)+1 > len(e.best) {
		return
	}

	col := e.pickColumn()
	for _, r := range e.colCand[col] {
		e.choose(r)
		e.dfs()
		e.unchoose(r)
		if e.truncated {
			return
		}
	}
}
