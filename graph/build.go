package graph

import (
	"github.com/katalvlaran/mazebot/grid"
)

// Build compacts g into a Graph in a single row-major pass.
//
// Steps:
//  1. Visit every cell (row 0..N-1, then column 0..N-1); walls are skipped.
//  2. Start and End always become nodes. Any other open cell becomes a node
//     unless it is a straight corridor cell (see isCorridor).
//  3. A new node scans upwards, then leftwards, and links to the first node
//     found before a wall or the board edge (see link).
//
// Returns ErrGridNil for a nil grid, or the context error if cancelled.
// Complexity: O(N²) time, O(N² + V) memory.
func Build(g *grid.Grid, opts ...Option) (*Graph, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Size()
	gr := &Graph{
		size:  n,
		nodes: make([]Node, 0, n),
		index: make([]NodeID, n*n),
		start: NoNode,
		end:   NoNode,
	}
	for i := range gr.index {
		gr.index[i] = NoNode
	}

	start, end := g.Start(), g.End()
	for r := 0; r < n; r++ {
		// cancellation check (once per row)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		for c := 0; c < n; c++ {
			p := grid.Point{Row: r, Col: c}
			if g.IsWall(p) {
				continue
			}
			isStart, isEnd := p == start, p == end
			if !isStart && !isEnd && isCorridor(g, p) {
				continue
			}

			id := gr.add(g, p)
			if isStart {
				gr.start = id
			}
			if isEnd {
				gr.end = id
			}
			o.OnNode(id, gr.nodes[id])
		}
	}

	return gr, nil
}

// isCorridor reports whether p is a pure pass-through cell: open on exactly
// the two opposite sides of one axis and closed on both sides of the other.
// The board edge counts as closed.
func isCorridor(g *grid.Grid, p grid.Point) bool {
	up := g.IsWall(p.Add(-1, 0))
	down := g.IsWall(p.Add(1, 0))
	left := g.IsWall(p.Add(0, -1))
	right := g.IsWall(p.Add(0, 1))

	vertical := !up && !down && left && right
	horizontal := !left && !right && up && down

	return vertical || horizontal
}

// add appends a node for p to the arena and links it backwards.
func (gr *Graph) add(g *grid.Grid, p grid.Point) NodeID {
	id := NodeID(len(gr.nodes))
	gr.nodes = append(gr.nodes, Node{
		Row:   p.Row,
		Col:   p.Col,
		Links: [4]NodeID{NoNode, NoNode, NoNode, NoNode},
	})
	gr.index[g.Index(p)] = id

	gr.link(g, id, Up)
	gr.link(g, id, Left)

	return id
}

// link walks from node id in direction d (Up or Left only: those cells are
// already final) and pairs id with the first node met. A wall or the board
// edge ends the walk without a link; corridor cells are stepped over.
func (gr *Graph) link(g *grid.Grid, id NodeID, d Direction) {
	dr, dc := d.Delta()
	q := gr.nodes[id].Point()
	for {
		q = q.Add(dr, dc)
		if g.IsWall(q) {
			return
		}
		other := gr.index[g.Index(q)]
		if other == NoNode {
			continue
		}
		gr.nodes[id].Links[d] = other
		gr.nodes[other].Links[d.Opposite()] = id
		return
	}
}
