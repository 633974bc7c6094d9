// Package cube provides the core value types shared by every minimizer in
// this module: ternary cubes (implicants), Boolean functions given as
// minterm sets, covers, and sum-of-products formatting.
//
// What:
//
//   - Cube — an immutable sequence of ternary symbols (Zero/One/X), one per
//     variable; represents the set of minterms matching its fixed positions.
//   - Function — an immutable Boolean function: variable count, minterms
//     (where the function is 1) and don't-cares (unconstrained outputs).
//   - Cover — a set of cubes whose union is intended to include every
//     minterm of a function.
//   - Format — deterministic rendering of a cover as a sum-of-products
//     expression over caller-supplied variable names.
//
// Why:
//
//   - One representation for exact (Quine–McCluskey) and heuristic
//     (Espresso) minimization: both manipulate the same cube algebra.
//   - Value semantics: all operations return new cubes, never mutate
//     operands, so callers may share cubes freely across goroutines.
//
// Conventions:
//
//   - Position 0 of a cube corresponds to the most significant bit of a
//     minterm index; position n-1 to the least significant. This matches
//     the usual truth-table reading order A0 A1 … A(n-1).
//   - The canonical string form uses '0', '1' and 'X'; Parse also accepts
//     '-' as an alias for 'X'.
//
// Complexity:
//
//   - Cube algebra (Covers, Distance, Merge, Contains, Intersect): O(n).
//   - Cube.Minterms: O(2^f) where f is the number of free (X) positions.
//   - NewFunction: O(k log k) for k supplied indices.
//   - Format: O(c·n + c log c) for a cover of c cubes.
//
// Errors:
//
//   - ErrVariableCount: variable count outside [MinVariables, MaxVariables].
//   - ErrIndexRange: a minterm or don't-care index outside [0, 2^n).
//   - ErrIndexOverlap: an index listed both as minterm and as don't-care.
//   - ErrCubeWidth: two cubes of differing widths used in one operation.
//   - ErrNotAdjacent: Merge on cubes whose distance is not exactly 1.
//   - ErrSymbol: Parse input containing a rune outside "01X-".
//   - ErrNameCount: Format given a name slice not matching the cube width.
package cube
