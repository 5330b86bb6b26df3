package grid

// offsets lists the four orthogonal moves as (dRow, dCol): N, E, S, W.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Components finds all 4-connected regions of open cells.
// Returns a slice of components; each component is a slice of row-major
// cell indices in discovery order. Use Coordinate to convert back.
//
// Time:   O(N²).
// Memory: O(N²) for seen flags and output.
func (g *Grid) Components() [][]int {
	total := g.size * g.size
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if g.cells[i0] == Wall || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			p := g.Coordinate(u)
			for _, d := range offsets {
				q := p.Add(d[0], d[1])
				if !g.IsOpen(q) {
					continue
				}
				vi := g.Index(q)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether a and b are open cells in the same component.
// Complexity: O(N²) worst case.
func (g *Grid) Connected(a, b Point) bool {
	if !g.IsOpen(a) || !g.IsOpen(b) {
		return false
	}
	_, err := g.steps(a, b)
	return err == nil
}

// ShortestSteps returns the fewest single-cell steps from Start to End,
// walking only open cells. It is an oracle independent of the compacted
// graph and is used to verify shortest-path search modes.
// Returns ErrNoPath when End is unreachable.
//
// Time:   O(N²).
// Memory: O(N²) for the distance table.
func (g *Grid) ShortestSteps() (int, error) {
	return g.steps(g.start, g.end)
}

// steps runs a plain BFS from a to b over open cells.
func (g *Grid) steps(a, b Point) (int, error) {
	if a == b {
		return 0, nil
	}
	total := g.size * g.size
	dist := make([]int, total)
	for i := range dist {
		dist[i] = -1
	}
	src, dst := g.Index(a), g.Index(b)
	dist[src] = 0
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		p := g.Coordinate(u)
		for _, d := range offsets {
			q := p.Add(d[0], d[1])
			if !g.IsOpen(q) {
				continue
			}
			v := g.Index(q)
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			if v == dst {
				return dist[v], nil
			}
			queue = append(queue, v)
		}
	}

	return 0, ErrNoPath
}
