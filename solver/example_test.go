package solver_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazebot/generate"
	"github.com/katalvlaran/mazebot/search"
	"github.com/katalvlaran/mazebot/solver"
)

func ExampleSolve() {
	g, _ := generate.Open(3)

	for _, m := range []search.Mode{search.ModeDepth, search.ModeBreadth} {
		sol, err := solver.Solve(context.Background(), g, solver.WithMode(m))
		if err != nil {
			fmt.Println(solver.Classify(err), err)
			return
		}
		fmt.Printf("%s: %s\n", m, sol.Directions)
	}

	ring, _ := generate.Ring(5)
	_, err := solver.Solve(context.Background(), ring)
	fmt.Println(solver.Classify(err))
	// Output:
	// depth: SSENNESS
	// breadth: EESS
	// disconnected
}
