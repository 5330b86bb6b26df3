package route_test

import (
	"fmt"

	"github.com/katalvlaran/mazebot/generate"
	"github.com/katalvlaran/mazebot/graph"
	"github.com/katalvlaran/mazebot/route"
	"github.com/katalvlaran/mazebot/search"
)

// ExampleEncode solves a single corridor and replays the answer.
func ExampleEncode() {
	g, _ := generate.Corridor(6)
	gr, _ := graph.Build(g)
	res, _ := search.Search(gr)

	dirs, _ := route.Encode(gr, res)
	end, _ := route.Replay(g, dirs)
	fmt.Println(dirs, end == g.End())
	// Output: EEEEE true
}
