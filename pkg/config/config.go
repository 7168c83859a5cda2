// Package config handles loading and managing Compatscope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for Compatscope.
type Config struct {
	Targets        map[string]string  `yaml:"targets"`         // browser -> version
	Weights        map[string]float64 `yaml:"weights"`         // browser -> [0,1]
	MarketShare    map[string]float64 `yaml:"market_share"`    // browser -> share
	Importance     map[string]float64 `yaml:"importance"`      // feature -> weight
	ModernBrowsers []string           `yaml:"modern_browsers"` // progressive-score split
	Dataset        DatasetConfig      `yaml:"dataset"`
}

// DatasetConfig locates the support dataset.
type DatasetConfig struct {
	Path        string `yaml:"path"`         // bulk JSON document
	FeaturesDir string `yaml:"features_dir"` // optional per-feature detail files
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Targets: map[string]string{
			"chrome":  "120",
			"firefox": "120",
			"safari":  "17",
			"edge":    "120",
		},
		Weights: map[string]float64{
			"chrome":  1.0,
			"firefox": 1.0,
			"safari":  1.0,
			"edge":    1.0,
			"opera":   0.7,
			"ie":      0.5,
		},
		ModernBrowsers: []string{"chrome", "firefox", "safari", "edge"},
		Dataset: DatasetConfig{
			Path:        "data/features.json",
			FeaturesDir: "data/features",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .compatscope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".compatscope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// ModernSet returns the modern-browser list as a membership set.
func (c *Config) ModernSet() map[string]bool {
	set := make(map[string]bool, len(c.ModernBrowsers))
	for _, b := range c.ModernBrowsers {
		set[b] = true
	}
	return set
}
