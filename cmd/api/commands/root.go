// Package commands implements the activation CLI.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"activation-engine/internal/config"
	"activation-engine/internal/engine"
	"activation-engine/internal/logging"
)

// NewRootCmd builds the root command with every subcommand registered.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "activation",
		Short: "Energy-aware task ranking and prompt selection",
		Long: `activation scores tasks and prompt categories against a user's
self-reported energy, mood and context.

Examples:
  activation serve --addr :8080
  activation rank --input request.json
  echo '{"energy": 2, "mood": "calm"}' | activation tags
  activation token --subject mobile-app`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newTagsCmd(),
		newRankCmd(),
		newCategoryCmd(),
		newTokenCmd(),
	)

	rootCmd.PersistentFlags().String("weights", "", "path to the weights YAML (default $ACTIVATION_WEIGHTS or weights.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error (default $ACTIVATION_LOG_LEVEL or info)")
	rootCmd.PersistentFlags().String("log-format", "", "text or json (default $ACTIVATION_LOG_FORMAT or text)")

	return rootCmd
}

type app struct {
	cfg    *config.Config
	logger *slog.Logger
	engine *engine.Engine
}

// loadApp resolves config (flags over env), builds the logger on stderr
// and loads the weights once.
func loadApp(cmd *cobra.Command) *app {
	cfg := config.Load()

	flags := cmd.Root().PersistentFlags()
	if v, _ := flags.GetString("weights"); v != "" {
		cfg.WeightsPath = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	weights := config.LoadWeights(cfg.WeightsPath, logger.With("component", "config"))

	return &app{
		cfg:    cfg,
		logger: logger,
		engine: engine.New(weights),
	}
}
