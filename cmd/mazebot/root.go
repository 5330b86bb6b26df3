package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazebot/internal/config"
	"github.com/katalvlaran/mazebot/internal/ctxlog"
	"github.com/katalvlaran/mazebot/search"
)

// version is set at build time via -ldflags.
var version = "dev"

// app is the state every command shares once the root pre-run has loaded
// configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	mode       string

	cfg *config.Config
	log *slog.Logger
}

// searchMode returns the --mode flag if set, else the configured mode.
func (a *app) searchMode() search.Mode {
	if a.mode != "" {
		if m, err := search.ParseMode(a.mode); err == nil {
			return m
		}
	}
	return a.cfg.SearchMode()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mazebot",
		Short: "Compact, search and solve grid mazes",
		Long: "mazebot turns a square grid maze into a graph of decision points,\n" +
			"searches it and answers with compass directions (N, S, E, W).",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (optional)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json (overrides config)")
	pf.StringVar(&a.mode, "mode", "", "search mode: depth, breadth or shortest (overrides config)")

	root.AddCommand(
		newRaceCmd(a),
		newSolveCmd(a),
		newServeCmd(a),
		newGenerateCmd(a),
	)
	return root
}

// load reads configuration, applies flag overrides and installs the logger
// in the command context.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	if a.mode != "" {
		cfg.Mode = a.mode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = ctxlog.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), a.log))
	return nil
}
