package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazebot/internal/checkpoint"
	"github.com/katalvlaran/mazebot/internal/mazebot"
	"github.com/katalvlaran/mazebot/internal/racer"
)

func newRaceCmd(a *app) *cobra.Command {
	var (
		login    string
		maxMazes int
	)
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Race the remote maze judge, resuming from the checkpoint file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("login") {
				a.cfg.Login = login
			}
			if cmd.Flags().Changed("max-mazes") {
				a.cfg.MaxMazes = maxMazes
			}
			if a.cfg.Login == "" {
				return fmt.Errorf("race: a login is required (--login, login in config or MAZEBOT_LOGIN)")
			}

			client, err := mazebot.New(a.cfg.BaseURL, a.cfg.Timeout, mazebot.WithLogger(a.log))
			if err != nil {
				return err
			}
			cp, err := checkpoint.Open(a.cfg.Checkpoint)
			if err != nil {
				return err
			}

			r := racer.New(client, cp, racer.Options{
				Login:    a.cfg.Login,
				Mode:     a.searchMode(),
				Verify:   a.cfg.Verify,
				MaxMazes: a.cfg.MaxMazes,
			})
			sum, err := r.Run(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: solved %d mazes, %d steps in %s (checkpoint %s)\n",
				sum.RunID, sum.Solved, sum.Steps, sum.Elapsed.Round(time.Millisecond), cp.Path())
			if sum.Finished {
				fmt.Fprintf(cmd.OutOrStdout(), "certificate: %s%s\n", a.cfg.BaseURL, sum.Certificate)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&login, "login", "", "GitHub login to race as")
	cmd.Flags().IntVar(&maxMazes, "max-mazes", 0, "stop after N mazes (0 = until finished)")
	return cmd
}
