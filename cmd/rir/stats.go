package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/rir/internal/engine"
)

// runStats is the root command's bare-invocation behavior: load the
// persisted index and print its corpus statistics.
func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	e, err := engine.LoadFrom(cfg.IndexDir, cfg.AnalyzerConfig())
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	stats := e.Stats()
	fmt.Printf("documents:              %d\n", stats.DocumentCount)
	fmt.Printf("total document length:  %d\n", stats.TotalDocumentLength)
	fmt.Printf("average document length: %.2f\n", stats.AverageDocumentLength)
	fmt.Printf("distinct terms:          %d\n", len(stats.TermFreq))
	return nil
}
