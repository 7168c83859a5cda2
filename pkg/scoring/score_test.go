package scoring_test

import (
	"errors"
	"math"
	"testing"

	"github.com/compatscope/compatscope/pkg/feature"
	"github.com/compatscope/compatscope/pkg/scoring"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimpleScore(t *testing.T) {
	tests := []struct {
		name     string
		statuses scoring.StatusMap
		want     float64
	}{
		{"empty", scoring.StatusMap{}, 0},
		{"all supported", scoring.StatusMap{"chrome": "y", "firefox": "y"}, 100},
		{"partial gets full credit", scoring.StatusMap{"chrome": "a"}, 100},
		{"prefix", scoring.StatusMap{"chrome": "x"}, 70},
		{"polyfill", scoring.StatusMap{"chrome": "p"}, 50},
		{"disabled", scoring.StatusMap{"chrome": "d"}, 30},
		{"mixed", scoring.StatusMap{"chrome": "y", "ie": "n"}, 50},
		{"unknown scores zero", scoring.StatusMap{"chrome": "u"}, 0},
	}
	for _, tt := range tests {
		if got := scoring.SimpleScore(tt.statuses); !almostEqual(got, tt.want) {
			t.Errorf("%s: SimpleScore = %g, want %g", tt.name, got, tt.want)
		}
	}
}

func TestSimpleScoreBounds(t *testing.T) {
	statuses := scoring.StatusMap{}
	for _, code := range []feature.StatusCode{"y", "a", "n", "p", "u", "x", "d"} {
		statuses[string(code)] = code
	}
	got := scoring.SimpleScore(statuses)
	if got < 0 || got > 100 {
		t.Errorf("SimpleScore = %g, want within [0,100]", got)
	}
}

func TestWeightedDefaultWeights(t *testing.T) {
	// (100*1.0 + 0*0.5) / 1.5
	ws := scoring.Weighted(scoring.StatusMap{"chrome": "y", "ie": "n"}, nil)
	if !almostEqual(ws.Weighted, 100.0/1.5) {
		t.Errorf("Weighted = %g, want %g", ws.Weighted, 100.0/1.5)
	}
	if !almostEqual(ws.Simple, 50) {
		t.Errorf("Simple = %g, want 50", ws.Simple)
	}
	if ws.Breakdown["chrome"] != 100 || ws.Breakdown["ie"] != 0 {
		t.Errorf("Breakdown = %v", ws.Breakdown)
	}
}

func TestWeightedUnknownBrowserDefaultsToOne(t *testing.T) {
	ws := scoring.Weighted(scoring.StatusMap{"brave": "y", "ie": "n"}, nil)
	want := 100.0 / 1.5 // brave weighs 1.0
	if !almostEqual(ws.Weighted, want) {
		t.Errorf("Weighted = %g, want %g", ws.Weighted, want)
	}
}

func TestWeightsSetValidation(t *testing.T) {
	w := scoring.DefaultWeights()
	if err := w.Set("chrome", 0.8); err != nil {
		t.Fatalf("valid weight: %v", err)
	}
	if w.Get("chrome") != 0.8 {
		t.Errorf("Get(chrome) = %g, want 0.8", w.Get("chrome"))
	}

	for _, bad := range []float64{-0.1, 1.1, 5} {
		if err := w.Set("chrome", bad); !errors.Is(err, scoring.ErrInvalidWeight) {
			t.Errorf("Set(%g): err = %v, want ErrInvalidWeight", bad, err)
		}
	}
	// Rejected values must not corrupt existing weights.
	if w.Get("chrome") != 0.8 {
		t.Errorf("Get(chrome) after rejects = %g, want 0.8", w.Get("chrome"))
	}
	if w.Get("ie") != 0.5 {
		t.Errorf("Get(ie) = %g, want 0.5", w.Get("ie"))
	}
}

func TestMarketShareScore(t *testing.T) {
	statuses := scoring.StatusMap{"chrome": "y", "ie": "n", "brave": "y"}
	shares := map[string]float64{"chrome": 0.6, "ie": 0.2, "vivaldi": 0.1}

	// brave and vivaldi lack overlap: (100*0.6 + 0*0.2) / 0.8
	want := 60.0 / 0.8
	if got := scoring.MarketShareScore(statuses, shares); !almostEqual(got, want) {
		t.Errorf("MarketShareScore = %g, want %g", got, want)
	}

	if got := scoring.MarketShareScore(statuses, map[string]float64{"opera": 0.1}); got != 0 {
		t.Errorf("no overlap: got %g, want 0", got)
	}
}

func TestFeatureImportanceScore(t *testing.T) {
	features := map[string]scoring.StatusMap{
		"a": {"chrome": "y"}, // 100
		"b": {"chrome": "n"}, // 0
	}

	// Default importance 1.0 for both.
	if got := scoring.FeatureImportanceScore(features, nil); !almostEqual(got, 50) {
		t.Errorf("default importance: got %g, want 50", got)
	}

	// Weighting b three times as important.
	got := scoring.FeatureImportanceScore(features, map[string]float64{"b": 3})
	if !almostEqual(got, 25) {
		t.Errorf("weighted importance: got %g, want 25", got)
	}

	if got := scoring.FeatureImportanceScore(nil, nil); got != 0 {
		t.Errorf("empty features: got %g, want 0", got)
	}
}

func TestProgressive(t *testing.T) {
	modern := map[string]bool{"chrome": true, "firefox": true}

	ps := scoring.Progressive(scoring.StatusMap{"chrome": "y", "firefox": "y", "ie": "n"}, modern)
	if !almostEqual(ps.Modern, 100) || !almostEqual(ps.Legacy, 0) || !almostEqual(ps.Overall, 50) {
		t.Errorf("Progressive = %+v, want modern 100 / legacy 0 / overall 50", ps)
	}

	// Asymmetric defaults: no modern browsers is vacuously 100, no legacy is 0.
	ps = scoring.Progressive(scoring.StatusMap{"ie": "y"}, modern)
	if !almostEqual(ps.Modern, 100) {
		t.Errorf("empty modern subset: Modern = %g, want 100", ps.Modern)
	}
	ps = scoring.Progressive(scoring.StatusMap{"chrome": "y"}, modern)
	if !almostEqual(ps.Legacy, 0) {
		t.Errorf("empty legacy subset: Legacy = %g, want 0", ps.Legacy)
	}
	if !almostEqual(ps.Overall, 50) {
		t.Errorf("all-modern overall = %g, want 50", ps.Overall)
	}
}
