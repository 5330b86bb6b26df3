package grid

import "strings"

// Render draws the board as N lines of ASCII: 'X' for walls, ' ' for open
// cells, 'S' and 'E' for the endpoints. marks overlays arbitrary runes (graph
// nodes, solution cells) and takes precedence over everything except S and E.
func (g *Grid) Render(marks map[Point]rune) string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			p := Point{Row: r, Col: c}
			switch {
			case p == g.start:
				b.WriteByte('S')
			case p == g.end:
				b.WriteByte('E')
			default:
				if m, ok := marks[p]; ok {
					b.WriteRune(m)
				} else if g.cells[g.Index(p)] == Wall {
					b.WriteByte(WallCode)
				} else {
					b.WriteByte(' ')
				}
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Rows returns the board as cell-code strings, walls as 'X' and open cells
// as '.'. The result round-trips through New.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	var b strings.Builder
	for r := 0; r < g.size; r++ {
		b.Reset()
		for c := 0; c < g.size; c++ {
			if g.cells[r*g.size+c] == Wall {
				b.WriteByte(WallCode)
			} else {
				b.WriteByte('.')
			}
		}
		rows[r] = b.String()
	}

	return rows
}
