package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = errors.New("grid: board must be square")

	// ErrBadCell indicates an empty cell code.
	ErrBadCell = errors.New("grid: empty cell code")

	// ErrOutOfBounds indicates a start or end coordinate outside the board.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrWallEndpoint indicates a start or end coordinate on a wall cell.
	ErrWallEndpoint = errors.New("grid: endpoint is a wall")

	// ErrNoPath indicates Start and End are not connected by open cells.
	ErrNoPath = errors.New("grid: no path between start and end")
)

// WallCode is the cell code that marks a wall. Every other code is open.
const WallCode = 'X'

// Cell classifies a single board position.
type Cell uint8

const (
	// Open cells can be walked through.
	Open Cell = iota
	// Wall cells block movement.
	Wall
)

// String returns "open" or "wall".
func (c Cell) String() string {
	if c == Wall {
		return "wall"
	}
	return "open"
}

// CellOf classifies a cell code.
func CellOf(code rune) Cell {
	if code == WallCode {
		return Wall
	}
	return Open
}

// Point is a 0-indexed board position.
type Point struct {
	Row int
	Col int
}

// String formats the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by (dr, dc).
func (p Point) Add(dr, dc int) Point {
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Grid is an immutable N×N maze board. Build it with New or FromCells.
type Grid struct {
	size  int
	cells []Cell // row-major, len == size*size
	start Point
	end   Point
}
