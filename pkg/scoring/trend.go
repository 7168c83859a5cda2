package scoring

import (
	"sort"

	"github.com/compatscope/compatscope/pkg/feature"
)

// trendThreshold is the score delta below which a change counts as stable.
const trendThreshold = 10

// TrendScore scores the first and last entries of a version-keyed history
// of status maps and labels the direction of change. Keys sort numerically
// (non-numeric keys last, ties by raw string). A single entry is stable
// with zero improvement; an empty history is unknown.
func TrendScore(history map[string]StatusMap) Trend {
	if len(history) == 0 {
		return Trend{Direction: TrendUnknown}
	}

	keys := make([]string, 0, len(history))
	for k := range history {
		keys = append(keys, k)
	}
	sortVersionKeys(keys)

	first := SimpleScore(history[keys[0]])
	last := SimpleScore(history[keys[len(keys)-1]])

	t := Trend{
		First:       first,
		Last:        last,
		Improvement: last - first,
		Direction:   TrendStable,
	}
	if len(history) == 1 {
		t.Improvement = 0
		return t
	}
	switch {
	case t.Improvement > trendThreshold:
		t.Direction = TrendImproving
	case t.Improvement < -trendThreshold:
		t.Direction = TrendDeclining
	}
	return t
}

func sortVersionKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		ki, iok := feature.VersionKey(keys[i])
		kj, jok := feature.VersionKey(keys[j])
		switch {
		case iok && jok && ki != kj:
			return ki < kj
		case iok != jok:
			return iok // numeric keys before non-numeric
		default:
			return keys[i] < keys[j]
		}
	})
}
