package scoring_test

import (
	"testing"

	"github.com/compatscope/compatscope/pkg/scoring"
)

func TestTrendScoreImproving(t *testing.T) {
	tr := scoring.TrendScore(map[string]scoring.StatusMap{
		"100": {"chrome": "n"},
		"120": {"chrome": "y"},
	})
	if tr.First != 0 || tr.Last != 100 || tr.Improvement != 100 {
		t.Errorf("trend = %+v, want first 0 / last 100 / improvement 100", tr)
	}
	if tr.Direction != scoring.TrendImproving {
		t.Errorf("direction = %q, want improving", tr.Direction)
	}
}

func TestTrendScoreDeclining(t *testing.T) {
	tr := scoring.TrendScore(map[string]scoring.StatusMap{
		"35": {"chrome": "y"},
		"80": {"chrome": "n"},
	})
	if tr.Direction != scoring.TrendDeclining || tr.Improvement != -100 {
		t.Errorf("trend = %+v, want declining by 100", tr)
	}
}

func TestTrendScoreStableWithinThreshold(t *testing.T) {
	// 100 -> 100+... a 0-point move is within the ±10 threshold.
	tr := scoring.TrendScore(map[string]scoring.StatusMap{
		"10": {"chrome": "y"},
		"20": {"chrome": "a"},
	})
	if tr.Direction != scoring.TrendStable {
		t.Errorf("direction = %q, want stable", tr.Direction)
	}
}

func TestTrendScoreNumericKeyOrder(t *testing.T) {
	// String order would put "9" after "120"; numeric order must win.
	tr := scoring.TrendScore(map[string]scoring.StatusMap{
		"9":   {"chrome": "n"},
		"120": {"chrome": "y"},
	})
	if tr.First != 0 || tr.Last != 100 {
		t.Errorf("trend = %+v, want keys in numeric order", tr)
	}
}

func TestTrendScoreSingleEntry(t *testing.T) {
	tr := scoring.TrendScore(map[string]scoring.StatusMap{
		"50": {"chrome": "y"},
	})
	if tr.Direction != scoring.TrendStable || tr.Improvement != 0 {
		t.Errorf("single entry = %+v, want stable with zero improvement", tr)
	}
}

func TestTrendScoreEmpty(t *testing.T) {
	tr := scoring.TrendScore(nil)
	if tr.Direction != scoring.TrendUnknown {
		t.Errorf("empty history direction = %q, want unknown", tr.Direction)
	}
}
