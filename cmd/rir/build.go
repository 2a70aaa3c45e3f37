package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/rir/internal/corpus"
	"github.com/wizenheimer/rir/internal/engine"
)

func newBuildCmd() *cobra.Command {
	var corpusDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Ingest a corpus directory and persist the resulting index",
		RunE: func(cmd *cobra.Command, args []string) error {
			if corpusDir == "" {
				return fmt.Errorf("build: --corpus-dir is required")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			e := engine.New(cfg.AnalyzerConfig())
			n, err := e.BuildFrom(corpus.NewDirWalker(corpusDir))
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			if err := e.SaveTo(cfg.IndexDir); err != nil {
				return fmt.Errorf("build: saving index: %w", err)
			}

			fmt.Printf("indexed %d documents\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusDir, "corpus-dir", "", "directory to walk and index")
	return cmd
}
