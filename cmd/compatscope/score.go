package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/compatscope/compatscope/pkg/scoring"
	"github.com/compatscope/compatscope/pkg/support"
)

func newScoreCmd() *cobra.Command {
	var (
		featureList string
		targetList  string
		dataPath    string
		featuresDir string
		mode        string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score feature support under a chosen scheme",
		Long:  `Resolves support statuses and scores them: simple, weighted, market-share, progressive, or the compatibility index.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScoreCmd(scoreCmdOpts{
				featureList: featureList,
				targetList:  targetList,
				dataPath:    dataPath,
				featuresDir: featuresDir,
				mode:        mode,
				outputFmt:   outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&featureList, "features", "", "Comma-separated feature ids (required)")
	cmd.Flags().StringVar(&targetList, "targets", "", "Comma-separated browser=version pairs (default: config targets)")
	cmd.Flags().StringVar(&dataPath, "data", "", "Path to bulk dataset document (default: config)")
	cmd.Flags().StringVar(&featuresDir, "features-dir", "", "Path to per-feature detail files (default: config)")
	cmd.Flags().StringVar(&mode, "mode", "simple", "Scoring mode: simple, weighted, market, progressive, importance, or index")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("features")

	return cmd
}

type scoreCmdOpts struct {
	featureList string
	targetList  string
	dataPath    string
	featuresDir string
	mode        string
	outputFmt   string
}

// featureScoreRow is one feature's scoring output, shape varying by mode.
type featureScoreRow struct {
	FeatureID   string                    `json:"feature_id"`
	Score       float64                   `json:"score"`
	Weighted    *scoring.WeightedScore    `json:"weighted,omitempty"`
	Progressive *scoring.ProgressiveScore `json:"progressive,omitempty"`
	Index       *scoring.Index            `json:"index,omitempty"`
}

func runScoreCmd(opts scoreCmdOpts) error {
	cfg := loadProjectConfig()

	targets, err := parseTargets(opts.targetList, cfg)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg, opts.dataPath, opts.featuresDir)
	if err != nil {
		return err
	}
	resolver := support.NewResolver(db)

	weights := scoring.DefaultWeights()
	for browser, w := range cfg.Weights {
		if err := weights.Set(browser, w); err != nil {
			return fmt.Errorf("configured weight: %w", err)
		}
	}
	modern := cfg.ModernSet()

	features := splitFeatures(opts.featureList)
	sort.Strings(features)

	rows := make([]featureScoreRow, 0, len(features))
	perFeature := make(map[string]float64, len(features))
	featureStatuses := make(map[string]scoring.StatusMap, len(features))
	for _, id := range features {
		statuses := scoring.StatusMap(resolver.CheckMultiple(id, targets))
		featureStatuses[id] = statuses
		row := featureScoreRow{FeatureID: id}
		switch opts.mode {
		case "weighted":
			ws := scoring.Weighted(statuses, weights)
			row.Score = ws.Weighted
			row.Weighted = &ws
		case "market":
			if len(cfg.MarketShare) == 0 {
				return fmt.Errorf("market mode needs market_share in the config file")
			}
			row.Score = scoring.MarketShareScore(statuses, cfg.MarketShare)
		case "progressive":
			ps := scoring.Progressive(statuses, modern)
			row.Score = ps.Overall
			row.Progressive = &ps
		case "index":
			idx := scoring.CompatibilityIndex(statuses)
			row.Score = idx.Score
			row.Index = &idx
		case "simple", "importance":
			row.Score = scoring.SimpleScore(statuses)
		default:
			return fmt.Errorf("unknown mode %q", opts.mode)
		}
		rows = append(rows, row)
		perFeature[id] = row.Score
	}

	cmp := scoring.CompareFeatures(perFeature)

	var aggregate *float64
	if opts.mode == "importance" {
		agg := scoring.FeatureImportanceScore(featureStatuses, cfg.Importance)
		aggregate = &agg
	}

	if opts.outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Mode       string             `json:"mode"`
			Features   []featureScoreRow  `json:"features"`
			Aggregate  *float64           `json:"aggregate,omitempty"`
			Comparison scoring.Comparison `json:"comparison"`
		}{opts.mode, rows, aggregate, cmp})
	}

	for _, row := range rows {
		fmt.Printf("  %-30s %6.1f  %s\n", row.FeatureID, row.Score, scoring.FineGrade(row.Score))
		if row.Index != nil {
			fmt.Printf("    %d full / %d partial / %d unsupported, risk %s\n",
				row.Index.Supported, row.Index.Partial, row.Index.Unsupported, row.Index.Risk)
		}
		if row.Progressive != nil {
			fmt.Printf("    modern %.1f / legacy %.1f\n", row.Progressive.Modern, row.Progressive.Legacy)
		}
	}
	if aggregate != nil {
		fmt.Printf("\nImportance-weighted score: %.1f\n", *aggregate)
	}
	fmt.Printf("\nMean %.1f (variance %.1f)\n", cmp.Mean, cmp.Variance)
	if len(cmp.Bottom) > 0 && len(rows) > 1 {
		fmt.Printf("Weakest: %s (%.1f)\n", cmp.Bottom[0].FeatureID, cmp.Bottom[0].Score)
	}
	return nil
}
