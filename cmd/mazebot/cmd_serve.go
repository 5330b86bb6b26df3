package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazebot/internal/api"
)

func newServeCmd(a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solve API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("listen") {
				a.cfg.Listen = listen
			}
			r := api.NewRouter(api.Config{
				Addr:   a.cfg.Listen,
				Mode:   a.searchMode(),
				Verify: a.cfg.Verify,
				Logger: a.log,
			})
			return r.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	return cmd
}
