package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-corpus-directory config file name, checked for
// at the root of a directory walk.
const ConfigFileName = ".rircfg.yaml"

// Config describes how to parse the files in one corpus directory.
type Config struct {
	FileType string   `yaml:"file_type"`
	Fields   []string `yaml:"fields"`
}

// DefaultConfig is used when a directory carries no .rircfg.yaml: every
// file is treated as plain text.
func DefaultConfig() Config {
	return Config{FileType: "text"}
}

// IsJSON reports whether this config selects the JSON (single document
// per file) parser.
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.FileType, "json")
}

// IsJSONLines reports whether this config selects the JSON Lines (one
// document per line) parser.
func (c Config) IsJSONLines() bool {
	return strings.EqualFold(c.FileType, "jsonlines")
}

// LoadConfig reads dir's config file, falling back to DefaultConfig if the
// file doesn't exist or fails to parse.
func LoadConfig(dir string) Config {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return DefaultConfig()
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.FileType == "" {
		cfg.FileType = "text"
	}
	return cfg
}
