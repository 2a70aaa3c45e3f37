// Package config loads engine configuration from a YAML file, with
// RIR_-prefixed environment variables overriding individual keys. It is
// pure plumbing around internal/engine and internal/rank's public types —
// none of it participates in the index's invariants.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/wizenheimer/rir/internal/analyzer"
	"github.com/wizenheimer/rir/internal/rank"
)

// EngineConfig holds every knob a running engine needs beyond the corpus
// itself: where its persisted index lives, how BM25 is tuned, which
// ranking algorithm a bare query uses, and which analyzer profile
// tokenizes documents and queries.
type EngineConfig struct {
	IndexDir        string     `mapstructure:"index_dir"`
	DefaultRanking  string     `mapstructure:"default_ranking"`
	AnalyzerProfile string     `mapstructure:"analyzer_profile"`
	BM25            BM25Config `mapstructure:"bm25"`
}

// BM25Config mirrors rank.BM25Params in a YAML/env-friendly shape.
type BM25Config struct {
	K1 float32 `mapstructure:"k1"`
	B  float32 `mapstructure:"b"`
}

// Default returns the configuration a bare `rir` invocation uses when no
// config file or environment overrides are present.
func Default() EngineConfig {
	return EngineConfig{
		IndexDir:        ".rir-index",
		DefaultRanking:  string(rank.Default),
		AnalyzerProfile: "default",
		BM25: BM25Config{
			K1: rank.DefaultBM25Params().K1,
			B:  rank.DefaultBM25Params().B,
		},
	}
}

// Load reads configuration from path (if non-empty; a missing or
// unreadable file is an error) and overlays RIR_-prefixed environment
// variables (e.g. RIR_BM25_K1, RIR_INDEX_DIR), falling back to Default for
// anything neither source sets.
func Load(path string) (EngineConfig, error) {
	v := viper.New()
	cfg := Default()

	v.SetConfigType("yaml")
	v.SetEnvPrefix("RIR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("index_dir", cfg.IndexDir)
	v.SetDefault("default_ranking", cfg.DefaultRanking)
	v.SetDefault("analyzer_profile", cfg.AnalyzerProfile)
	v.SetDefault("bm25.k1", cfg.BM25.K1)
	v.SetDefault("bm25.b", cfg.BM25.B)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return EngineConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// Algorithm resolves DefaultRanking to a rank.Algorithm, falling back to
// rank.Default for an unrecognized or empty value.
func (c EngineConfig) Algorithm() rank.Algorithm {
	switch rank.Algorithm(c.DefaultRanking) {
	case rank.ExactMatch, rank.VectorSpaceModel, rank.OkapiBM25, rank.LMD:
		return rank.Algorithm(c.DefaultRanking)
	default:
		return rank.Default
	}
}

// AnalyzerConfig resolves AnalyzerProfile to an analyzer.Config, falling
// back to analyzer.Default for an unrecognized or empty value.
func (c EngineConfig) AnalyzerConfig() analyzer.Config {
	if strings.EqualFold(c.AnalyzerProfile, "classic") {
		return analyzer.Classic()
	}
	return analyzer.Default()
}

// BM25Params resolves BM25Config to a rank.BM25Params.
func (c EngineConfig) BM25Params() rank.BM25Params {
	return rank.BM25Params{K1: c.BM25.K1, B: c.BM25.B}
}
