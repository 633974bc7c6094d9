// Package qm implements exact two-level Boolean minimization with the
// Quine–McCluskey tabular method.
//
// What:
//
//   - Minimize — full pipeline: prime-implicant generation by iterative
//     level-by-level merging, covering-table construction, essential
//     prime-implicant reduction, and an exact branch-and-bound search for
//     a minimum residual cover.
//   - PrimeImplicants — the prime set alone, for callers that render
//     implicant tables or drive their own covering strategy.
//
// Why:
//
//   - Exact: the returned cover uses the minimum possible number of
//     cubes (subject to the search budget), with deterministic
//     tie-breaking — identical input always yields an identical cover.
//   - Bounded: minimum set cover is NP-hard and the prime-implicant count
//     can grow exponentially in n, so the covering search honors a node
//     budget and a soft time limit; exhaustion yields the best cover
//     found so far with Result.Truncated set, never a hard failure.
//
// Algorithm outline:
//
//  1. One fully specified cube per groupable index (minterms ∪
//     don't-cares), bucketed by the count of 1-fixed positions.
//  2. Merge every cube in bucket k with every adjacent cube in bucket
//     k+1; merged pairs are flagged combined, results are deduplicated
//     into the next level. Repeat until no merge occurs.
//  3. Primes = every never-combined cube across all levels, deduplicated.
//  4. Covering table rows = primes, columns = true minterms only.
//  5. Columns covered by exactly one row force that row into the cover.
//  6. The residual table is solved exactly: branch on the column with the
//     fewest covering rows, prune when the selection can no longer beat
//     the incumbent; candidate rows are tried fewest-literals-first, then
//     in first-encountered order.
//
// Degenerate cases: no true minterms → empty cover ("0" once formatted);
// all 2^n indices groupable → the single all-X cube ("1").
//
// Complexity:
//
//   - Prime generation: O(p² · n) per level in the worst case, p = cubes
//     at that level; exponential in n overall (inherent to the method).
//   - Covering search: exponential worst case, bounded by
//     Options.MaxNodes and Options.TimeLimit.
//
// Errors:
//
//   - ErrNilFunction — Minimize/PrimeImplicants given a nil function.
//   - ErrBudget      — a negative node or time budget in Options.
//   - Construction errors (index range/overlap) surface from cube.NewFunction
//     before this package is ever reached.
package qm
