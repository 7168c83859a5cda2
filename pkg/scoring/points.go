package scoring

import "github.com/compatscope/compatscope/pkg/feature"

// points is the fixed status-to-points table. Partial support ("a") earns
// full credit here; severity classification in pkg/compat buckets the same
// code as a gap.
var points = map[feature.StatusCode]float64{
	feature.StatusSupported:   100,
	feature.StatusPartial:     100,
	feature.StatusPrefixed:    70,
	feature.StatusPolyfill:    50,
	feature.StatusDisabled:    30,
	feature.StatusUnsupported: 0,
	feature.StatusUnknown:     0,
}

// Points returns the score contribution of a status code. Unrecognized
// codes score zero.
func Points(code feature.StatusCode) float64 {
	return points[code]
}

// CoarseGrade maps a score to the 5-level letter scale used by the
// compatibility index.
func CoarseGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// FineGrade maps a score to the 13-level letter scale used by report
// summaries. Independent of the coarse scale; do not derive one from the
// other.
func FineGrade(score float64) string {
	switch {
	case score >= 97:
		return "A+"
	case score >= 93:
		return "A"
	case score >= 90:
		return "A-"
	case score >= 87:
		return "B+"
	case score >= 83:
		return "B"
	case score >= 80:
		return "B-"
	case score >= 77:
		return "C+"
	case score >= 73:
		return "C"
	case score >= 70:
		return "C-"
	case score >= 67:
		return "D+"
	case score >= 63:
		return "D"
	case score >= 60:
		return "D-"
	default:
		return "F"
	}
}
