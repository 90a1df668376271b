// Package config loads the geistfig configuration.
//
// The config file is optional: running without one uses the repository's
// conventional relative paths, which is how the figure regeneration is
// normally invoked from the paper checkout root.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all geistfig settings.
type Config struct {
	// Path to the read-only evaluation results database.
	DatabasePath string `yaml:"database_path"`

	// Path to the figure manifest (run IDs, judge filters, cell designs).
	ManifestPath string `yaml:"manifest_path"`

	// Directory the figure PNGs are written to.
	OutputDir string `yaml:"output_dir"`

	// Directory holding discovery-analysis JSON exports (word-cloud fallback).
	ExportsDir string `yaml:"exports_dir"`

	// TTF font used by the word-cloud renderer. The figure is skipped when
	// the file is absent.
	WordcloudFont string `yaml:"wordcloud_font"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures structured log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the conventional configuration used when no config file
// exists.
func Default() *Config {
	return &Config{
		DatabasePath:  "data/evaluations.db",
		ManifestPath:  "data/figures.yaml",
		OutputDir:     "docs/research/figures",
		ExportsDir:    "data/exports",
		WordcloudFont: "assets/fonts/Roboto-Regular.ttf",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config at path, falling back to Default when the file does
// not exist. A file that exists but fails to parse is an error: a present
// but broken config should stop the run rather than silently regenerate
// figures against the wrong paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
