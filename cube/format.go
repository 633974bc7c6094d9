// Package cube — deterministic sum-of-products rendering.
package cube

import (
	"fmt"
	"strings"
)

// termSeparator joins product terms in the rendered expression.
const termSeparator = " + "

// DefaultNames returns the conventional variable names A0..A(n-1).
func DefaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("A%d", i)
	}

	return names
}

// Format renders a cover as a sum-of-products expression.
//
// Each cube becomes one product term: the variable name where the symbol
// is One, the name followed by a prime (') where the symbol is Zero, and
// nothing where the symbol is X. Terms are joined by " + " and ordered by
// ascending symbol sequence, so identical covers always render
// identically regardless of cube order.
//
// Degenerate forms: an empty cover renders as "0"; a cover containing the
// all-X cube renders as "1" (that cube subsumes every other term).
//
// Returns ErrNameCount when len(names) differs from the cube width.
// Complexity: O(c log c + c·n).
func Format(cv Cover, names []string) (string, error) {
	if len(cv) == 0 {
		return "0", nil
	}
	terms := make([]string, 0, len(cv))
	for _, c := range cv.Sorted() {
		if len(names) != c.Width() {
			return "", ErrNameCount
		}
		if c.IsFull() {
			// The constant-1 term absorbs the whole expression.
			return "1", nil
		}
		terms = append(terms, formatTerm(c, names))
	}

	return strings.Join(terms, termSeparator), nil
}

// formatTerm renders a single non-full cube as a product of literals.
func formatTerm(c Cube, names []string) string {
	var sb strings.Builder
	for i := 0; i < c.Width(); i++ {
		switch c.Symbol(i) {
		case One:
			sb.WriteString(names[i])
		case Zero:
			sb.WriteString(names[i])
			sb.WriteByte('\'')
		}
	}

	return sb.String()
}
