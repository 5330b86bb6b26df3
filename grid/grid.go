package grid

import (
	"fmt"
	"unicode/utf8"
)

// New constructs a Grid from one string per row, one rune per cell.
// Returns ErrEmptyGrid, ErrNonSquare, ErrOutOfBounds or ErrWallEndpoint
// for malformed input.
// Complexity: O(N²) time and memory.
func New(rows []string, start, end Point) (*Grid, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	cells := make([]Cell, 0, n*n)
	for r, row := range rows {
		if utf8.RuneCountInString(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonSquare, r, utf8.RuneCountInString(row), n)
		}
		for _, code := range row {
			cells = append(cells, CellOf(code))
		}
	}

	return newGrid(n, cells, start, end)
}

// FromCells constructs a Grid from a 2-D array of cell codes, the shape used
// by remote maze documents. Only the first rune of each code is significant.
// Complexity: O(N²) time and memory.
func FromCells(codes [][]string, start, end Point) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(codes)
	cells := make([]Cell, 0, n*n)
	for r, row := range codes {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(row), n)
		}
		for c, code := range row {
			if code == "" {
				return nil, fmt.Errorf("%w at (%d,%d)", ErrBadCell, r, c)
			}
			first, _ := utf8.DecodeRuneInString(code)
			cells = append(cells, CellOf(first))
		}
	}

	return newGrid(n, cells, start, end)
}

// newGrid validates the endpoints against an already parsed board.
func newGrid(n int, cells []Cell, start, end Point) (*Grid, error) {
	g := &Grid{size: n, cells: cells, start: start, end: end}
	for _, ep := range []struct {
		name string
		p    Point
	}{{"start", start}, {"end", end}} {
		if !g.InBounds(ep.p) {
			return nil, fmt.Errorf("%w: %s %v on %dx%d board", ErrOutOfBounds, ep.name, ep.p, n, n)
		}
		if g.IsWall(ep.p) {
			return nil, fmt.Errorf("%w: %s %v", ErrWallEndpoint, ep.name, ep.p)
		}
	}

	return g, nil
}

// Size returns the side length N.
func (g *Grid) Size() int {
	return g.size
}

// Start returns the start cell.
func (g *Grid) Start() Point {
	return g.start
}

// End returns the end cell.
func (g *Grid) End() Point {
	return g.end
}

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// At returns the cell at p. Positions off the board read as Wall, so the
// board edge behaves like a closed side.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.Index(p)]
}

// IsWall reports whether p is a wall or off the board.
func (g *Grid) IsWall(p Point) bool {
	return g.At(p) == Wall
}

// IsOpen reports whether p is an open cell on the board.
func (g *Grid) IsOpen(p Point) bool {
	return g.At(p) == Open
}

// Index maps p to its row-major index: Row*N + Col.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Row*g.size + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{Row: idx / g.size, Col: idx % g.size}
}
