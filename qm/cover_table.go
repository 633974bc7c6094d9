package qm

import "github.com/gagradebnath/DLD/cube"

// tableRow is one covering-table row: a prime implicant together with the
// true-minterm columns it covers. Primes covering only don't-cares never
// become rows.
type tableRow struct {
	prime int   // index into coverTable.primes
	cols  []int // ascending column indices covered by this prime
	lits  int   // literal count of the prime (tie-break key)
}

// coverTable is the prime-implicant covering table for one Minimize call:
// rows = primes covering at least one true minterm, columns = true
// minterms. It tracks which columns are already covered by selected rows.
// The table lives only for the duration of the call.
type coverTable struct {
	primes   []cube.Cube
	rows     []tableRow
	colRows  [][]int // per column: ascending row indices covering it
	covered  []bool  // per column
	nCovered int
	selected []int // rows committed to the cover, in selection order
}

// newCoverTable builds the table. Every column is guaranteed at least one
// covering row: each true minterm survives inside some prime implicant.
// Complexity: O(p·k·n) for p primes and k columns.
func newCoverTable(primes []cube.Cube, must []int) *coverTable {
	t := &coverTable{
		primes:  primes,
		colRows: make([][]int, len(must)),
		covered: make([]bool, len(must)),
	}
	var ci int
	var m int
	for pi, p := range primes {
		var cols []int
		for ci, m = range must {
			if p.Covers(m) {
				cols = append(cols, ci)
			}
		}
		if len(cols) == 0 {
			continue // don't-care-only prime: not a row
		}
		t.rows = append(t.rows, tableRow{prime: pi, cols: cols, lits: p.Literals()})
	}
	for ri, r := range t.rows {
		for _, c := range r.cols {
			t.colRows[c] = append(t.colRows[c], ri)
		}
	}

	return t
}

// rowCube returns the prime implicant behind row r.
func (t *coverTable) rowCube(r int) cube.Cube { return t.primes[t.rows[r].prime] }

// uncovered returns the number of columns no selected row covers yet.
func (t *coverTable) uncovered() int { return len(t.covered) - t.nCovered }

// selectRow commits row r to the cover and marks its columns covered.
func (t *coverTable) selectRow(r int) {
	t.selected = append(t.selected, r)
	for _, c := range t.rows[r].cols {
		if !t.covered[c] {
			t.covered[c] = true
			t.nCovered++
		}
	}
}

// selectRows commits rows in the given order.
func (t *coverTable) selectRows(rows []int) {
	for _, r := range rows {
		t.selectRow(r)
	}
}

// extractEssential finds every column covered by exactly one row on the
// full table; each such row is essential and is committed to the cover.
// Singleton columns are identified first, then the rows are committed, so
// the notion of "essential" refers to the original table, not to a
// partially reduced one.
// Returns the essential rows in ascending column order, deduplicated.
func (t *coverTable) extractEssential() []int {
	var essential []int
	seen := make(map[int]struct{})
	for c := range t.colRows {
		if len(t.colRows[c]) != 1 {
			continue
		}
		r := t.colRows[c][0]
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		essential = append(essential, r)
	}
	for _, r := range essential {
		t.selectRow(r)
	}

	return essential
}
