// Package graph compacts a grid.Grid into a sparse graph of decision points
// and owns that graph for the lifetime of one solve.
//
// What:
//
//   - A Node sits on every open cell that is the start, the end, a turn, a
//     junction, a dead end or an isolated cell. Straight corridor cells
//     (open on exactly two opposite sides, closed on the other two) are
//     absorbed into the edge that runs through them.
//   - Nodes live in an arena owned by Graph and refer to each other by
//     NodeID handles, one slot per Direction (Left, Right, Up, Down).
//   - Links are symmetric: if a.Links[Right] == b then b.Links[Left] == a,
//     and likewise for Up/Down.
//
// How:
//
//	Build scans the board once in row-major order. When it creates a node it
//	looks only backwards: upwards along its column and leftwards along its
//	row, skipping corridor cells, and links to the first node it meets unless
//	a wall or the board edge comes first. The reciprocal Down/Right slots of
//	the older node are filled in at the same moment, so every link exists once
//	the pass completes.
//
// Search scratch state (predecessors, distances) is deliberately not stored
// on Node; see package search.
//
// Complexity:
//
//   - Build: O(N²) cells visited, each backward scan stops at the first node
//     or wall, so total scan work is O(N²) as well. Memory: O(N² + V).
//
// Errors:
//
//   - ErrGridNil:         Build received a nil grid.
//   - ErrAsymmetricLink:  Validate found a one-sided link.
//   - ErrMisalignedLink:  Validate found a link that is not a straight open run.
package graph
