package graph_test

import (
	"fmt"

	"github.com/katalvlaran/mazebot/graph"
	"github.com/katalvlaran/mazebot/grid"
)

// ExampleBuild compacts a bent corridor: the straight middle cell is not a
// node, the two corners are.
func ExampleBuild() {
	g, _ := grid.New([]string{"..X", "X.X", "X.."},
		grid.Point{Row: 0, Col: 0}, grid.Point{Row: 2, Col: 2})
	gr, _ := graph.Build(g)

	fmt.Printf("%+v\n", gr.Stats())
	fmt.Print(g.Render(gr.Marks('+')))
	// Output:
	// {Nodes:4 Edges:3 DeadEnds:2 Junctions:0}
	// S+X
	// X X
	// X+E
}
