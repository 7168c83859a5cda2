package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBrowsersCmd() *cobra.Command {
	var (
		dataPath    string
		featuresDir string
	)

	cmd := &cobra.Command{
		Use:   "browsers <browser>",
		Short: "List every version of a browser known to the dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowsers(args[0], dataPath, featuresDir)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Path to bulk dataset document (default: config)")
	cmd.Flags().StringVar(&featuresDir, "features-dir", "", "Path to per-feature detail files (default: config)")

	return cmd
}

func runBrowsers(browser, dataPath, featuresDir string) error {
	cfg := loadProjectConfig()
	db, err := openDatabase(cfg, dataPath, featuresDir)
	if err != nil {
		return err
	}

	versions := db.VersionsForBrowser(browser)
	if len(versions) == 0 {
		fmt.Printf("No versions recorded for %q\n", browser)
		return nil
	}
	fmt.Printf("%s: %s\n", browser, strings.Join(versions, ", "))
	return nil
}
