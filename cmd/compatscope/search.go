package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		dataPath    string
		featuresDir string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the feature dataset",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "), dataPath, featuresDir)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Path to bulk dataset document (default: config)")
	cmd.Flags().StringVar(&featuresDir, "features-dir", "", "Path to per-feature detail files (default: config)")

	return cmd
}

func runSearch(query, dataPath, featuresDir string) error {
	cfg := loadProjectConfig()
	db, err := openDatabase(cfg, dataPath, featuresDir)
	if err != nil {
		return err
	}

	results := db.Search(query)
	if len(results) == 0 {
		fmt.Printf("No features match %q\n", query)
		return nil
	}
	for _, f := range results {
		fmt.Printf("  %-30s %s\n", f.ID, f.Title)
	}
	return nil
}
