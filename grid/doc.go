// Package grid models a square maze board of walls and open cells with a
// designated start and end cell.
//
// What:
//
//   - Grid wraps an N×N board parsed from one-character cell codes, where
//     'X' is a wall and anything else is open.
//   - Start and End are validated to lie on the board and on open cells.
//   - Components and Connected report 4-connected regions of open cells.
//   - ShortestSteps is a cell-level breadth-first oracle for the fewest
//     steps between Start and End.
//   - Render draws the board as ASCII with optional overlay marks.
//
// Coordinates:
//
//	Point{Row, Col} is 0-indexed, row-major. Row grows southwards and Col
//	grows eastwards. The remote maze documents express positions as [x, y],
//	which maps to Point{Row: y, Col: x}.
//
// Complexity:
//
//   - New / FromCells: O(N²) time and memory (input is deep-copied).
//   - Components:      O(N²) time, O(N²) memory.
//   - ShortestSteps:   O(N²) time, O(N²) memory.
//
// Errors:
//
//   - ErrEmptyGrid:    no rows or no columns.
//   - ErrNonSquare:    row lengths differ from the row count.
//   - ErrBadCell:      an empty cell code.
//   - ErrOutOfBounds:  start or end lies outside the board.
//   - ErrWallEndpoint: start or end lies on a wall.
//   - ErrNoPath:       Start and End are not connected (ShortestSteps only).
package grid
