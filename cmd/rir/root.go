package main

import (
	"github.com/spf13/cobra"

	"github.com/wizenheimer/rir/internal/config"
)

var (
	indexDir   string
	configPath string
)

// newRootCmd builds the rir [-i|--index-dir DIR] <cmd> command tree: build,
// search, and a bare invocation that prints stats.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rir",
		Short:         "rir is a positional inverted-index search engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStats,
	}

	root.PersistentFlags().StringVarP(&indexDir, "index-dir", "i", "", "index directory (overrides config)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	root.AddCommand(newBuildCmd(), newSearchCmd())
	return root
}

// loadConfig loads internal/config.EngineConfig, applying the --index-dir
// flag as the final override over the config file and environment.
func loadConfig() (config.EngineConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.EngineConfig{}, err
	}
	if indexDir != "" {
		cfg.IndexDir = indexDir
	}
	return cfg, nil
}
