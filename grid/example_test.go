package grid_test

import (
	"fmt"

	"github.com/katalvlaran/mazebot/grid"
)

// ExampleGrid_ShortestSteps builds a small board and asks the cell-level
// oracle how many steps separate start and end.
//
//	S . X
//	X . X
//	X . E
func ExampleGrid_ShortestSteps() {
	g, err := grid.New([]string{
		"..X",
		"X.X",
		"X..",
	}, grid.Point{Row: 0, Col: 0}, grid.Point{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	steps, _ := g.ShortestSteps()
	fmt.Println("steps:", steps)
	fmt.Print(g.Render(nil))
	// Output:
	// steps: 4
	// S X
	// X X
	// X E
}
