// Package dld is a two-level Boolean minimization engine: the cube and
// implicant algebra shared by logic minimizers, an exact Quine–McCluskey
// tabular minimizer, and an Espresso-style heuristic minimizer.
//
// 🚀 What is DLD?
//
//	A compact, deterministic library that brings together:
//		• Core primitives: ternary cubes, Boolean functions, covers
//		• Exact minimization: Quine–McCluskey with branch-and-bound covering
//		• Heuristic minimization: Espresso (EXPAND / IRREDUNDANT / REDUCE)
//		• Rendering: deterministic sum-of-products formatting
//
// ✨ Why choose DLD?
//
//   - Deterministic – identical input always yields an identical cover
//   - Bounded – node/time budgets on exact search, iteration caps on heuristics
//   - Pure Go – no cgo, no hidden deps, no global state
//   - Concurrent-friendly – every call is pure over immutable values
//
// Everything is organized under three subpackages:
//
//	cube/     — ternary Cube algebra, Function, Cover and SOP formatting
//	qm/       — exact Quine–McCluskey minimizer
//	espresso/ — heuristic EXPAND→IRREDUNDANT→REDUCE minimizer
//
// Quick sketch:
//
//	fn, _ := cube.NewFunction(3, []int{1, 3, 5, 7}, nil)
//	res, _ := qm.Minimize(fn, qm.DefaultOptions())
//	expr, _ := cube.Format(res.Cover, cube.DefaultNames(3)) // "A2"
//
// Dive into the package docs for contracts, complexity and error taxonomy.
package dld
