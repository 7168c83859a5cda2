package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/compatscope/compatscope/pkg/support"
)

func newRangesCmd() *cobra.Command {
	var (
		browser     string
		dataPath    string
		featuresDir string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "ranges <feature-id>",
		Short: "Show compressed version ranges for a feature",
		Long:  `Compresses a feature's full version history into runs of equal support status, per browser.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRanges(args[0], browser, dataPath, featuresDir, outputFmt)
		},
	}

	cmd.Flags().StringVar(&browser, "browser", "", "Limit output to one browser")
	cmd.Flags().StringVar(&dataPath, "data", "", "Path to bulk dataset document (default: config)")
	cmd.Flags().StringVar(&featuresDir, "features-dir", "", "Path to per-feature detail files (default: config)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func runRanges(featureID, browser, dataPath, featuresDir, outputFmt string) error {
	cfg := loadProjectConfig()
	db, err := openDatabase(cfg, dataPath, featuresDir)
	if err != nil {
		return err
	}
	if _, ok := db.Get(featureID); !ok {
		return fmt.Errorf("unknown feature %q", featureID)
	}

	resolver := support.NewResolver(db)
	summaries := resolver.SupportSummary(featureID)
	if browser != "" {
		s, ok := summaries[browser]
		if !ok {
			return fmt.Errorf("no support data for browser %q", browser)
		}
		summaries = map[string]support.BrowserSummary{browser: s}
	}

	if outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	browsers := make([]string, 0, len(summaries))
	for b := range summaries {
		browsers = append(browsers, b)
	}
	sort.Strings(browsers)

	fmt.Printf("%s\n", featureID)
	for _, b := range browsers {
		s := summaries[b]
		fmt.Printf("  %s: %s", b, s.CurrentStatusText)
		if s.SupportedSince != "" {
			fmt.Printf(" (since %s)", s.SupportedSince)
		}
		fmt.Println()
		for _, rg := range s.Ranges {
			if rg.Start == rg.End {
				fmt.Printf("    %-12s %s\n", rg.Start, rg.StatusText)
			} else {
				fmt.Printf("    %-12s %s\n", rg.Start+"-"+rg.End, rg.StatusText)
			}
		}
	}
	return nil
}
