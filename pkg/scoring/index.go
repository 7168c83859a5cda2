package scoring

import "github.com/compatscope/compatscope/pkg/feature"

// CompatibilityIndex computes the composite index for one status map:
// score, coarse grade, support counts, exact-full-support percentage, and a
// risk label. An empty map yields the fail-safe {0, F, high} rather than an
// error.
func CompatibilityIndex(statuses StatusMap) Index {
	idx := Index{Grade: "F", Risk: RiskHigh}
	if len(statuses) == 0 {
		return idx
	}

	for _, code := range statuses {
		switch code {
		case feature.StatusSupported:
			idx.Supported++
		case feature.StatusPartial, feature.StatusPrefixed, feature.StatusPolyfill:
			idx.Partial++
		default:
			idx.Unsupported++
		}
	}
	idx.Total = len(statuses)
	idx.Score = SimpleScore(statuses)
	idx.Grade = CoarseGrade(idx.Score)
	idx.SupportPercentage = float64(idx.Supported) / float64(idx.Total)

	switch {
	case idx.Unsupported == 0 && idx.Partial == 0:
		idx.Risk = RiskNone
	case idx.Unsupported == 0:
		idx.Risk = RiskLow
	case float64(idx.Unsupported) < float64(idx.Total)/2:
		idx.Risk = RiskMedium
	default:
		idx.Risk = RiskHigh
	}
	return idx
}
