// Package scoring implements the Compatscope scoring engine: pure functions
// mapping support-status maps to numeric scores, letter grades, and risk
// labels.
package scoring

import "github.com/compatscope/compatscope/pkg/feature"

// StatusMap maps a browser id to its resolved support status.
type StatusMap map[string]feature.StatusCode

// WeightedScore carries a browser-weighted score next to the unweighted one
// and the raw per-browser point breakdown.
type WeightedScore struct {
	Simple    float64            `json:"simple_score"`
	Weighted  float64            `json:"weighted_score"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// ProgressiveScore is the result of scoring modern and legacy browsers
// independently.
type ProgressiveScore struct {
	Modern  float64 `json:"modern_score"`
	Legacy  float64 `json:"legacy_score"`
	Overall float64 `json:"overall_score"`
}

// Risk is the coarse per-result risk classification. It is distinct from
// the per-feature severity used in issue listings.
type Risk string

const (
	RiskNone   Risk = "none"
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Index is the composite compatibility index for one status map.
type Index struct {
	Score             float64 `json:"score"`
	Grade             string  `json:"grade"` // coarse scale: A, B, C, D, F
	Supported         int     `json:"supported"`
	Partial           int     `json:"partial"`
	Unsupported       int     `json:"unsupported"`
	Total             int     `json:"total"`
	SupportPercentage float64 `json:"support_percentage"` // fraction with exactly "y"
	Risk              Risk    `json:"risk"`
}

// TrendDirection labels how support evolved across a version history.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
	TrendUnknown   TrendDirection = "unknown"
)

// Trend is the result of scoring the first and last entries of a version
// history.
type Trend struct {
	First       float64        `json:"first_score"`
	Last        float64        `json:"last_score"`
	Improvement float64        `json:"improvement"`
	Direction   TrendDirection `json:"trend"`
}

// FeatureScore pairs a feature id with its score, for rankings.
type FeatureScore struct {
	FeatureID string  `json:"feature_id"`
	Score     float64 `json:"score"`
}

// Comparison ranks a set of per-feature scores.
type Comparison struct {
	Top      []FeatureScore `json:"top"`    // best first, at most 5
	Bottom   []FeatureScore `json:"bottom"` // worst first, at most 5
	Mean     float64        `json:"mean"`
	Variance float64        `json:"variance"` // population variance
}
