package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazebot/generate"
	"github.com/katalvlaran/mazebot/internal/mazebot"
)

func newGenerateCmd(_ *app) *cobra.Command {
	var (
		cells int
		seed  int64
		loops float64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random maze document (JSON)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if loops < 0 || loops > 1 {
				return fmt.Errorf("generate: --loops must be in [0,1], got %g", loops)
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			g, err := generate.Perfect(cells, generate.WithSeed(seed), generate.WithLoops(loops))
			if err != nil {
				return err
			}
			doc := mazebot.FromGrid(fmt.Sprintf("Generated maze (%dx%d, seed %d)", g.Size(), g.Size(), seed), g)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}
	cmd.Flags().IntVar(&cells, "cells", 10, "cells per side; the board side is 2*cells+1")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().Float64Var(&loops, "loops", 0, "probability of removing an extra wall, creating cycles")
	return cmd
}
