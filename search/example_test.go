package search_test

import (
	"fmt"

	"github.com/katalvlaran/mazebot/generate"
	"github.com/katalvlaran/mazebot/graph"
	"github.com/katalvlaran/mazebot/search"
)

// ExampleSearch contrasts the default stack discipline with the shortest
// mode on a fully open 3×3 board.
func ExampleSearch() {
	g, _ := generate.Open(3)
	gr, _ := graph.Build(g)

	for _, m := range []search.Mode{search.ModeDepth, search.ModeShortest} {
		res, err := search.Search(gr, search.WithMode(m))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		steps, _ := res.Distance(gr.End())
		fmt.Printf("%-8s steps=%d expanded=%d\n", m, steps, len(res.Order))
	}
	// Output:
	// depth    steps=8 expanded=9
	// shortest steps=4 expanded=9
}
