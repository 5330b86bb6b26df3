// Package route turns a search result into the compass-letter string a maze
// judge expects, and replays such strings on a board.
//
// What:
//
//   - Runs walks the predecessor chain from the end node back to the start
//     and emits one Run per graph hop: a Heading (N, S, E, W) and the number
//     of cells walked.
//   - Encode concatenates the runs into a string such as "EEEESSWN".
//   - Replay and Trace step through a direction string on a grid, one cell
//     per letter, and report where it ends or every cell it visits.
//
// Why:
//
//   - Graph hops always run along one row or one column, so each hop expands
//     into a block of identical letters.
//   - Replay is the exact inverse of Encode, which makes every produced
//     string checkable against the board before it is sent anywhere.
//
// Errors:
//
//   - ErrBrokenChain if the chain has a gap, a cycle, or never reached end.
//   - ErrDegenerateSegment if two consecutive nodes share no row or column,
//     or coincide.
//   - ErrBadHeading, ErrOffGrid, ErrHitWall from Replay and Trace.
//
// Complexity:
//
//   - Runs/Encode: O(P + L) for P nodes on the route and L letters.
//   - Replay/Trace: O(L).
package route
