// Package espresso implements heuristic two-level Boolean minimization in
// the style of the Espresso logic minimizer: iterated EXPAND, IRREDUNDANT
// and REDUCE passes over a cube cover.
//
// What:
//
//   - Minimize     — minimize a function starting from the canonical
//     cover (one fully specified cube per true minterm).
//   - MinimizeFrom — same loop over a caller-supplied starting cover.
//
// Why:
//
//   - Exact minimization pays an exponential worst case; Espresso trades
//     guaranteed optimality for predictable latency, making it the right
//     tool for interactive callers and larger variable counts.
//   - The result is a valid, irredundant cover whose literal cost never
//     exceeds that of the previous iteration: the cost sequence across
//     iterations is non-increasing by construction.
//
// The three passes:
//
//   - EXPAND: raise fixed positions of each cube to X, one at a time, as
//     long as the grown cube stays inside the care set (never covering a
//     minterm where the function must be 0). Among valid raises, the one
//     subsuming the most other cover cubes wins; position index breaks
//     ties. Subsumed cubes are dropped immediately.
//   - IRREDUNDANT: keep cubes largest-first (fewest literals), dropping
//     any cube whose true minterms the rest of the cover already covers.
//   - REDUCE: shrink each cube to the supercube of the true minterms only
//     it covers, relative to the rest of the live cover — slack for the
//     next EXPAND to escape the current local optimum.
//
// Iteration stops when a full cycle fails to lower the total literal
// cost, or at Options.MaxIterations (Result.Truncated then reports that
// the budget, not the cost test, ended the loop). The best cover observed
// is returned — a worsening cycle can never leak into the result.
//
// Complexity: each cycle is polynomial in the cover size but membership
// tests enumerate cube minterms, so a cycle is O(c²·2^n) worst case;
// the iteration count is capped. Not guaranteed optimal.
//
// Errors:
//
//   - ErrNilFunction — nil *cube.Function.
//   - ErrIterations  — MaxIterations < 1.
//   - ErrCoverWidth  — a starting cube of the wrong width.
//   - ErrCoverRange  — a starting cube covering an index where the
//     function must be 0.
//   - ErrCoverShort  — a starting cover missing some true minterm.
package espresso
