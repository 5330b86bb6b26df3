package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazebot/grid"
)

var (
	// ErrBadHeading is returned for a letter outside N, S, E, W.
	ErrBadHeading = errors.New("route: bad heading")

	// ErrOffGrid is returned when a step leaves the board.
	ErrOffGrid = errors.New("route: step leaves the board")

	// ErrHitWall is returned when a step lands on a wall.
	ErrHitWall = errors.New("route: step hits a wall")
)

// Replay walks directions from g.Start(), one cell per letter, and returns
// the final position.
func Replay(g *grid.Grid, directions string) (grid.Point, error) {
	var last grid.Point
	err := walk(g, directions, func(p grid.Point) { last = p })
	return last, err
}

// Trace is Replay that returns every visited position, start included.
func Trace(g *grid.Grid, directions string) ([]grid.Point, error) {
	out := make([]grid.Point, 0, Length(directions)+1)
	if err := walk(g, directions, func(p grid.Point) { out = append(out, p) }); err != nil {
		return nil, err
	}
	return out, nil
}

// walk calls visit for the start and after each step.
func walk(g *grid.Grid, directions string, visit func(grid.Point)) error {
	if g == nil {
		return fmt.Errorf("%w: grid", ErrNilInput)
	}
	cur := g.Start()
	visit(cur)
	step := 0
	for _, r := range directions {
		step++
		h, ok := ParseHeading(r)
		if !ok {
			return fmt.Errorf("%w: %q at step %d", ErrBadHeading, r, step)
		}
		next := cur.Add(h.Delta())
		if !g.InBounds(next) {
			return fmt.Errorf("%w: step %d from %v", ErrOffGrid, step, cur)
		}
		if g.IsWall(next) {
			return fmt.Errorf("%w: step %d at %v", ErrHitWall, step, next)
		}
		cur = next
		visit(cur)
	}
	return nil
}
