package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/rir/internal/engine"
	"github.com/wizenheimer/rir/internal/rank"
)

const maxHitsPrinted = 10

func newSearchCmd() *cobra.Command {
	var ranking string

	cmd := &cobra.Command{
		Use:   "search [PHRASE]",
		Short: "Query a persisted index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			e, err := engine.LoadFrom(cfg.IndexDir, cfg.AnalyzerConfig())
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			algorithm := rank.Algorithm(ranking)
			if ranking == "" {
				algorithm = cfg.Algorithm()
			}

			bm25Params := cfg.BM25Params()

			if len(args) > 0 {
				return runQuery(e, args[0], algorithm, bm25Params)
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if err := runQuery(e, scanner.Text(), algorithm, bm25Params); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&ranking, "ranking", "", "exact-match|vector-space-model|okapi-bm25|lmd (default: config's default_ranking)")
	return cmd
}

func runQuery(e *engine.Engine, phrase string, algorithm rank.Algorithm, bm25Params rank.BM25Params) error {
	paths, err := e.ExecQuery(phrase, algorithm, bm25Params)
	if err != nil {
		return fmt.Errorf("search: querying %q: %w", phrase, err)
	}
	if len(paths) > maxHitsPrinted {
		paths = paths[:maxHitsPrinted]
	}
	for i, path := range paths {
		fmt.Printf("%d. %s\n", i+1, path)
	}
	return nil
}
