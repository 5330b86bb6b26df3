package graph_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebot/generate"
	"github.com/katalvlaran/mazebot/graph"
	"github.com/katalvlaran/mazebot/grid"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t testing.TB, rows []string, start, end grid.Point) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, start, end)
	require.NoError(t, err)
	return g
}

// corridorCell re-states the compaction predicate independently of the
// package under test: open on exactly two opposite sides, closed on the
// other two, board edge closed.
func corridorCell(g *grid.Grid, p grid.Point) bool {
	n, s := g.IsOpen(p.Add(-1, 0)), g.IsOpen(p.Add(1, 0))
	w, e := g.IsOpen(p.Add(0, -1)), g.IsOpen(p.Add(0, 1))
	return (n && s && !w && !e) || (w && e && !n && !s)
}

func TestBuild_NilGrid(t *testing.T) {
	gr, err := graph.Build(nil)
	assert.Nil(t, gr)
	assert.ErrorIs(t, err, graph.ErrGridNil)
}

func TestBuild_Cancelled(t *testing.T) {
	g, err := generate.Open(4)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = graph.Build(g, graph.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBuild_Corridor: a straight corridor compacts to its two endpoints.
func TestBuild_Corridor(t *testing.T) {
	g, err := generate.Corridor(6)
	require.NoError(t, err)

	gr, err := graph.Build(g)
	require.NoError(t, err)
	require.Equal(t, 2, gr.Len())

	start, _ := gr.Node(gr.Start())
	end, _ := gr.Node(gr.End())
	assert.Equal(t, grid.Point{Row: 0, Col: 0}, start.Point())
	assert.Equal(t, grid.Point{Row: 0, Col: 5}, end.Point())
	assert.Equal(t, gr.End(), start.Neighbor(graph.Right))
	assert.Equal(t, gr.Start(), end.Neighbor(graph.Left))
	assert.Equal(t, 5, gr.Steps(gr.Start(), gr.End()))
	assert.Equal(t, graph.Stats{Nodes: 2, Edges: 1, DeadEnds: 2}, gr.Stats())
}

// TestBuild_OpenRoom: on a fully open 3×3 board every cell is a decision
// point and the links form the 3×3 lattice.
func TestBuild_OpenRoom(t *testing.T) {
	g, err := generate.Open(3)
	require.NoError(t, err)

	gr, err := graph.Build(g)
	require.NoError(t, err)
	assert.Equal(t, 9, gr.Len())
	assert.Equal(t, 12, gr.Stats().Edges)

	centre, ok := gr.NodeAt(grid.Point{Row: 1, Col: 1})
	require.True(t, ok)
	n, _ := gr.Node(centre)
	assert.Equal(t, 4, n.Degree())
	up, _ := gr.Node(n.Neighbor(graph.Up))
	assert.Equal(t, grid.Point{Row: 0, Col: 1}, up.Point())
}

// TestBuild_SkipsCorridorCells checks links that jump over corridor cells.
//
//	S . . . .
//	X X X X .
//	E . . . .
func TestBuild_SkipsCorridorCells(t *testing.T) {
	g := mustGrid(t, []string{
		".....",
		"XXXX.",
		".....",
		"XXXXX",
		"XXXXX",
	}, grid.Point{Row: 0, Col: 0}, grid.Point{Row: 2, Col: 0})

	gr, err := graph.Build(g)
	require.NoError(t, err)

	// start, two turns, end
	require.Equal(t, 4, gr.Len())
	for _, p := range []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 4}, {Row: 2, Col: 4}, {Row: 2, Col: 0}} {
		_, ok := gr.NodeAt(p)
		assert.True(t, ok, "expected node at %v", p)
	}
	_, ok := gr.NodeAt(grid.Point{Row: 1, Col: 4})
	assert.False(t, ok, "vertical corridor cell must not be a node")

	topRight, _ := gr.NodeAt(grid.Point{Row: 0, Col: 4})
	bottomRight, _ := gr.NodeAt(grid.Point{Row: 2, Col: 4})
	assert.Equal(t, bottomRight, gr.Neighbor(topRight, graph.Down))
	assert.Equal(t, topRight, gr.Neighbor(bottomRight, graph.Up))
	assert.Equal(t, gr.Start(), gr.Neighbor(topRight, graph.Left))
	assert.Equal(t, gr.End(), gr.Neighbor(bottomRight, graph.Left))
	assert.NoError(t, gr.Validate(g))
}

// TestBuild_StartInsideCorridor: an endpoint in the middle of a corridor is
// still a node and splits the corridor edge.
func TestBuild_StartInsideCorridor(t *testing.T) {
	g := mustGrid(t, []string{
		".....",
		"XXXXX",
		"XXXXX",
		"XXXXX",
		"XXXXX",
	}, grid.Point{Row: 0, Col: 2}, grid.Point{Row: 0, Col: 4})

	gr, err := graph.Build(g)
	require.NoError(t, err)
	assert.Equal(t, 3, gr.Len(), "west dead end, start, end")
	assert.Equal(t, gr.End(), gr.Neighbor(gr.Start(), graph.Right))
	west, ok := gr.NodeAt(grid.Point{})
	require.True(t, ok)
	assert.Equal(t, west, gr.Neighbor(gr.Start(), graph.Left))
}

// TestBuild_SameStartEnd: a single node serves as both endpoints.
func TestBuild_SameStartEnd(t *testing.T) {
	g := mustGrid(t, []string{"...", "...", "..."}, grid.Point{Row: 1, Col: 1}, grid.Point{Row: 1, Col: 1})
	gr, err := graph.Build(g)
	require.NoError(t, err)
	assert.Equal(t, gr.Start(), gr.End())
}

func TestBuild_OnNodeHook(t *testing.T) {
	g, err := generate.Perfect(6, generate.WithSeed(9))
	require.NoError(t, err)

	var seen []graph.NodeID
	gr, err := graph.Build(g, graph.WithOnNode(func(id graph.NodeID, n graph.Node) {
		seen = append(seen, id)
		// backward links are final when the hook fires
		if up := n.Neighbor(graph.Up); up != graph.NoNode {
			assert.Less(t, int(up), int(id))
		}
	}))
	require.NoError(t, err)
	assert.Len(t, seen, gr.Len())
}

// TestBuild_Properties runs the graph invariants over a family of generated
// mazes: symmetry/alignment, coverage and idempotent construction.
func TestBuild_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		loops := float64(seed%5) / 4
		g, err := generate.Perfect(int(4+seed%9), generate.WithSeed(seed), generate.WithLoops(loops))
		require.NoError(t, err)

		gr, err := graph.Build(g)
		require.NoError(t, err)

		// Symmetry and alignment.
		require.NoError(t, gr.Validate(g), "seed %d", seed)

		// Coverage.
		for i := 0; i < g.Size()*g.Size(); i++ {
			p := g.Coordinate(i)
			_, isNode := gr.NodeAt(p)
			want := g.IsOpen(p) && (p == g.Start() || p == g.End() || !corridorCell(g, p))
			require.Equal(t, want, isNode, "seed %d cell %v", seed, p)
		}

		// Idempotence.
		again, err := graph.Build(g)
		require.NoError(t, err)
		if diff := cmp.Diff(gr.Nodes(), again.Nodes()); diff != "" {
			t.Fatalf("seed %d: rebuild differs (-first +second):\n%s", seed, diff)
		}
		assert.Equal(t, gr.Start(), again.Start())
		assert.Equal(t, gr.End(), again.End())
	}
}
