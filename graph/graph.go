package graph

import (
	"fmt"

	"github.com/katalvlaran/mazebot/grid"
)

// Size returns the side length of the board the graph was built from.
func (gr *Graph) Size() int {
	return gr.size
}

// Len returns the number of nodes.
func (gr *Graph) Len() int {
	return len(gr.nodes)
}

// Start returns the handle of the start node.
func (gr *Graph) Start() NodeID {
	return gr.start
}

// End returns the handle of the end node. It equals Start when the maze
// starts on its own exit.
func (gr *Graph) End() NodeID {
	return gr.end
}

// Valid reports whether id refers to a node of this graph.
func (gr *Graph) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(gr.nodes)
}

// Node returns the node behind id. ok is false for an invalid handle.
func (gr *Graph) Node(id NodeID) (n Node, ok bool) {
	if !gr.Valid(id) {
		return Node{}, false
	}
	return gr.nodes[id], true
}

// Neighbor returns the handle linked from id in direction d, or NoNode.
func (gr *Graph) Neighbor(id NodeID, d Direction) NodeID {
	if !gr.Valid(id) {
		return NoNode
	}
	return gr.nodes[id].Links[d]
}

// NodeAt returns the node sitting on p, if any.
func (gr *Graph) NodeAt(p grid.Point) (NodeID, bool) {
	if p.Row < 0 || p.Row >= gr.size || p.Col < 0 || p.Col >= gr.size {
		return NoNode, false
	}
	id := gr.index[p.Row*gr.size+p.Col]
	return id, id != NoNode
}

// Nodes returns a copy of the arena in creation (row-major) order.
func (gr *Graph) Nodes() []Node {
	out := make([]Node, len(gr.nodes))
	copy(out, gr.nodes)
	return out
}

// Steps returns the number of single-cell moves between two nodes, i.e. the
// Manhattan distance. Linked nodes share a row or a column, so for them it
// is the length of the corridor between them.
func (gr *Graph) Steps(a, b NodeID) int {
	na, nb := gr.nodes[a], gr.nodes[b]
	return abs(na.Row-nb.Row) + abs(na.Col-nb.Col)
}

// Stats counts nodes, undirected links, dead ends and junctions.
// Complexity: O(V).
func (gr *Graph) Stats() Stats {
	s := Stats{Nodes: len(gr.nodes)}
	links := 0
	for _, n := range gr.nodes {
		deg := n.Degree()
		links += deg
		switch {
		case deg == 1:
			s.DeadEnds++
		case deg >= 3:
			s.Junctions++
		}
	}
	s.Edges = links / 2

	return s
}

// Validate checks every link against the graph invariants:
//   - symmetry: the reverse slot of the neighbour points back;
//   - alignment: neighbours share a row (Left/Right) or a column (Up/Down)
//     and lie on the correct side;
//   - corridor: when g is non-nil, every cell strictly between two linked
//     nodes is open and carries no node.
//
// Returns ErrAsymmetricLink or ErrMisalignedLink wrapped with the offending
// positions. Complexity: O(V + total corridor length).
func (gr *Graph) Validate(g *grid.Grid) error {
	for i, n := range gr.nodes {
		id := NodeID(i)
		for _, d := range Directions {
			other := n.Links[d]
			if other == NoNode {
				continue
			}
			if !gr.Valid(other) || gr.nodes[other].Links[d.Opposite()] != id {
				return fmt.Errorf("%w: %v %s", ErrAsymmetricLink, n.Point(), d)
			}
			if err := gr.checkRun(g, id, other, d); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkRun verifies that b is reached from a by stepping in direction d
// over open, node-free cells.
func (gr *Graph) checkRun(g *grid.Grid, a, b NodeID, d Direction) error {
	dr, dc := d.Delta()
	from, to := gr.nodes[a].Point(), gr.nodes[b].Point()
	for q, steps := from.Add(dr, dc), 1; ; q, steps = q.Add(dr, dc), steps+1 {
		if steps > gr.size || q.Row < 0 || q.Row >= gr.size || q.Col < 0 || q.Col >= gr.size {
			return fmt.Errorf("%w: %v %s never reaches %v", ErrMisalignedLink, from, d, to)
		}
		if q == to {
			return nil
		}
		if g != nil && g.IsWall(q) {
			return fmt.Errorf("%w: wall at %v between %v and %v", ErrMisalignedLink, q, from, to)
		}
		if id, ok := gr.NodeAt(q); ok && id != b {
			return fmt.Errorf("%w: node %v skipped between %v and %v", ErrMisalignedLink, q, from, to)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Marks returns one overlay rune per node position, ready for grid.Render.
func (gr *Graph) Marks(r rune) map[grid.Point]rune {
	marks := make(map[grid.Point]rune, len(gr.nodes))
	for _, n := range gr.nodes {
		marks[n.Point()] = r
	}
	return marks
}
