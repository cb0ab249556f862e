// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analysis AnalysisConfig `toml:"analysis"`
}

// AnalysisConfig maps analysis-related settings. Fields are pointers so that
// unset keys never override command-line defaults.
type AnalysisConfig struct {
	Input       *string  `toml:"input"`
	OutputDir   *string  `toml:"output-dir"`
	Top         *int     `toml:"top"`
	Strict      *bool    `toml:"strict"`
	ViradaSince *int     `toml:"virada-since"`
	ExpBase     *float64 `toml:"exp-base"`
	MaxBoost    *float64 `toml:"max-boost"`
	Window      *int     `toml:"window"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
