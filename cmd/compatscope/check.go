package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/compatscope/compatscope/pkg/compat"
	"github.com/compatscope/compatscope/pkg/surface"
)

func newCheckCmd() *cobra.Command {
	var (
		featureList string
		targetList  string
		dataPath    string
		featuresDir string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Analyze feature compatibility against target browsers",
		Long:  `Resolves each feature's support status per target browser and reports scores, severities, and workarounds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(checkOpts{
				featureList: featureList,
				targetList:  targetList,
				dataPath:    dataPath,
				featuresDir: featuresDir,
				outputFmt:   outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&featureList, "features", "", "Comma-separated feature ids (required)")
	cmd.Flags().StringVar(&targetList, "targets", "", "Comma-separated browser=version pairs (default: config targets)")
	cmd.Flags().StringVar(&dataPath, "data", "", "Path to bulk dataset document (default: config)")
	cmd.Flags().StringVar(&featuresDir, "features-dir", "", "Path to per-feature detail files (default: config)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json, or markdown")
	_ = cmd.MarkFlagRequired("features")

	return cmd
}

type checkOpts struct {
	featureList string
	targetList  string
	dataPath    string
	featuresDir string
	outputFmt   string
}

func runCheck(opts checkOpts) error {
	cfg := loadProjectConfig()

	targets, err := parseTargets(opts.targetList, cfg)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("no target browsers (pass --targets or configure them)")
	}

	db, err := openDatabase(cfg, opts.dataPath, opts.featuresDir)
	if err != nil {
		return err
	}

	engine := compat.NewEngine(db)
	rep := engine.Analyze(splitFeatures(opts.featureList), targets)
	issues := engine.DetailedIssues(rep)

	renderer := surface.ForFormat(opts.outputFmt)
	if err := renderer.Render(os.Stdout, rep, issues); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}
