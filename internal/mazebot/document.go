package mazebot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazebot/grid"
)

// ErrBadPosition is returned when a starting or ending position is
// missing or is not an [x, y] pair.
var ErrBadPosition = errors.New("mazebot: position must be an [x, y] pair")

// Document is a maze as served by the API. Positions are [x, y] pairs:
// x is the column, y the row. They are slices so that a missing or
// mis-sized pair is detected rather than zero-filled.
type Document struct {
	Name             string     `json:"name"`
	MazePath         string     `json:"mazePath"`
	StartingPosition []int      `json:"startingPosition"`
	EndingPosition   []int      `json:"endingPosition"`
	Map              [][]string `json:"map"`
}

// Start returns the starting position as a grid point.
func (d *Document) Start() (grid.Point, error) {
	return position("startingPosition", d.StartingPosition)
}

// End returns the ending position as a grid point.
func (d *Document) End() (grid.Point, error) {
	return position("endingPosition", d.EndingPosition)
}

func position(field string, xy []int) (grid.Point, error) {
	if len(xy) != 2 {
		return grid.Point{}, fmt.Errorf("%s %v: %w", field, xy, ErrBadPosition)
	}
	return grid.Point{Row: xy[1], Col: xy[0]}, nil
}

// Grid converts the document into a board. Errors are ErrBadPosition or
// those of grid.FromCells.
func (d *Document) Grid() (*grid.Grid, error) {
	start, err := d.Start()
	if err != nil {
		return nil, err
	}
	end, err := d.End()
	if err != nil {
		return nil, err
	}
	return grid.FromCells(d.Map, start, end)
}

// Cell codes written by FromGrid. Only WallCode matters when reading back.
const (
	codeOpen  = " "
	codeStart = "A"
	codeEnd   = "B"
)

// FromGrid builds a Document for g, the inverse of Grid.
func FromGrid(name string, g *grid.Grid) *Document {
	rows := g.Rows()
	m := make([][]string, len(rows))
	for r, row := range rows {
		m[r] = make([]string, 0, len(row))
		for _, c := range row {
			code := string(c)
			if c != grid.WallCode {
				code = codeOpen
			}
			m[r] = append(m[r], code)
		}
	}
	s, e := g.Start(), g.End()
	m[s.Row][s.Col] = codeStart
	m[e.Row][e.Col] = codeEnd
	return &Document{
		Name:             name,
		StartingPosition: []int{s.Col, s.Row},
		EndingPosition:   []int{e.Col, e.Row},
		Map:              m,
	}
}
