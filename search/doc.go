// Package search finds a walk from the start node to the end node of a
// graph.Graph and records, for every node it reaches, the node it was
// reached from.
//
// What
//
//   - One traversal skeleton parameterised by a Frontier:
//   - ModeDepth    — last-in-first-out stack (default).
//   - ModeBreadth  — first-in-first-out queue, fewest decision points.
//   - ModeShortest — min-heap on walked cells (Dijkstra), fewest steps.
//   - Neighbours are always examined in graph.Directions order: Left, Right,
//     Up, Down. Together with the frontier discipline this fixes which path
//     is found, so results are reproducible.
//   - Predecessors and distances are kept in a Result keyed by NodeID, never
//     on the nodes, so one Graph can be searched repeatedly.
//
// ModeDepth
//
//	ModeDepth reproduces the maze racer's historical "breadth" search, which
//	in fact used a stack: pop the most recent node; stop if it is the end;
//	otherwise push every neighbour that has not been expanded yet, recording
//	the popped node as its predecessor (overwriting any earlier record), and
//	finally mark the popped node expanded. A node pushed twice may be popped
//	and expanded twice. The traversal is depth-first in behaviour: it finds
//	some path, not necessarily the shortest one. The expanded set is a
//	handle-indexed bitmap, so the membership test is O(1) rather than a scan
//	of every expanded node, and the emitted path is the same either way.
//
// ModeBreadth and ModeShortest
//
//	Both skip frontier entries whose node was already expanded. ModeBreadth
//	keeps the first predecessor a node is discovered from; ModeShortest
//	replaces it whenever a strictly shorter walk (in cells) is found, ties
//	resolved in push order.
//
// Complexity (V = nodes, E = links)
//
//   - ModeDepth, ModeBreadth: Time O(V + E), Memory O(V + E).
//   - ModeShortest:           Time O((V + E) log V), Memory O(V + E).
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrExhausted        if the frontier empties before the end is reached.
//   - ErrInvariant        if a frontier entry is not a valid node handle.
//   - ErrOptionViolation  if an Option carries a meaningless value.
//   - Wrapped OnExpand hook errors and context errors.
package search
