// SPDX-License-Identifier: MIT
// Package: mazebot/generate
//
// Package generate builds deterministic maze boards for tests, benchmarks and
// the CLI.
//
// Constructors:
//
//   - Open(n):      n×n board with no walls; start top-left, end bottom-right.
//   - Corridor(n):  a single straight corridor along row 0 of an n×n board.
//   - Ring(n):      start sealed inside a ring of walls; end unreachable.
//   - Perfect(k):   a (2k+1)×(2k+1) perfect maze carved by randomized Kruskal
//     over a k×k lattice of rooms. WithLoops knocks out extra walls so the
//     maze has cycles and several routes.
//
// Determinism:
//
//	Perfect needs an explicit RNG (WithSeed or WithRand); the same seed always
//	yields the same board. Option constructors panic on meaningless values;
//	constructors themselves only return sentinel errors.
//
// Errors:
//
//   - ErrTooSmall:  a size parameter below the documented minimum.
//   - ErrNeedRand:  Perfect called without WithSeed/WithRand.
package generate
