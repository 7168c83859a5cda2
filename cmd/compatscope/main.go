// Package main provides the compatscope CLI entry point.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/compatscope/compatscope/pkg/config"
	"github.com/compatscope/compatscope/pkg/feature"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "compatscope",
		Short: "Browser compatibility intelligence for web features",
		Long: `Compatscope checks web-platform features against target browsers using a
versioned support dataset, and scores the result.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newCheckCmd(),
		newScoreCmd(),
		newRangesCmd(),
		newSearchCmd(),
		newBrowsersCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadProjectConfig discovers and loads .compatscope/config.yaml, falling
// back to defaults when no config file exists.
func loadProjectConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	path := config.FindConfigFile(cwd)
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// openDatabase loads the dataset named by flags or config.
func openDatabase(cfg *config.Config, dataPath, featuresDir string) (*feature.Database, error) {
	bulk := firstNonEmpty(dataPath, cfg.Dataset.Path)
	details := firstNonEmpty(featuresDir, cfg.Dataset.FeaturesDir)
	db, err := feature.Load(bulk, details)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return db, nil
}

// parseTargets parses a "browser=version,browser=version" flag value.
// An empty value falls back to the configured targets.
func parseTargets(spec string, cfg *config.Config) (map[string]string, error) {
	if spec == "" {
		return cfg.Targets, nil
	}
	targets := map[string]string{}
	for _, pair := range strings.Split(spec, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid target %q (want browser=version)", pair)
		}
		targets[parts[0]] = parts[1]
	}
	return targets, nil
}

// splitFeatures parses a comma-separated feature id list.
func splitFeatures(spec string) []string {
	var features []string
	for _, f := range strings.Split(spec, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return features
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
