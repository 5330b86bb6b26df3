package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/internal/ctxlog"
	"github.com/katalvlaran/mazebot/internal/mazebot"
	"github.com/katalvlaran/mazebot/route"
	"github.com/katalvlaran/mazebot/solver"
)

// solved is the outcome for one input file.
type solved struct {
	name string
	grid *grid.Grid
	sol  *solver.Solution
	err  error
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		render bool
		jobs   int
	)
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve maze documents (JSON) and print their directions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			ctx := cmd.Context()
			log := ctxlog.FromContext(ctx)
			if jobs <= 0 {
				jobs = runtime.NumCPU()
			}

			results := make([]solved, len(files))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(jobs)
			for i, path := range files {
				i, path := i, path
				g.Go(func() error {
					results[i] = solveFile(gctx, a, path)
					return nil
				})
			}
			_ = g.Wait() // errors captured per file

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
					log.ErrorContext(ctx, "solve failed", "maze", r.name, "class", solver.Classify(r.err), "error", r.err)
					fmt.Fprintf(out, "%s: error: %v\n", r.name, r.err)
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", r.name, r.sol.Directions)
				if render {
					pts, err := route.Trace(r.grid, r.sol.Directions)
					if err != nil {
						return err
					}
					marks := make(map[grid.Point]rune, len(pts))
					for _, p := range pts {
						marks[p] = '.'
					}
					fmt.Fprint(out, r.grid.Render(marks))
				}
			}
			if failed > 0 {
				return fmt.Errorf("solve: %d of %d mazes failed", failed, len(files))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "draw each board with its route")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "mazes solved in parallel (0 = number of CPUs)")
	return cmd
}

// solveFile reads, converts and solves one document.
func solveFile(ctx context.Context, a *app, path string) solved {
	res := solved{name: path}
	data, err := os.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}
	var doc mazebot.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		res.err = solver.Malformed(fmt.Errorf("%s: %w", path, err))
		return res
	}
	if doc.Name != "" {
		res.name = doc.Name
	}
	g, err := doc.Grid()
	if err != nil {
		res.err = solver.Malformed(err)
		return res
	}
	res.grid = g
	res.sol, res.err = solver.Solve(ctx, g, solver.WithMode(a.searchMode()), solver.WithVerify(a.cfg.Verify))
	return res
}
