package scoring_test

import (
	"fmt"
	"testing"

	"github.com/compatscope/compatscope/pkg/scoring"
)

func TestCompareFeatures(t *testing.T) {
	scores := map[string]float64{}
	for i := 1; i <= 7; i++ {
		scores[fmt.Sprintf("f%d", i)] = float64(i * 10) // 10..70
	}

	cmp := scoring.CompareFeatures(scores)

	if len(cmp.Top) != 5 || len(cmp.Bottom) != 5 {
		t.Fatalf("top/bottom sizes = %d/%d, want 5/5", len(cmp.Top), len(cmp.Bottom))
	}
	if cmp.Top[0].FeatureID != "f7" {
		t.Errorf("best = %s, want f7", cmp.Top[0].FeatureID)
	}
	if cmp.Bottom[0].FeatureID != "f1" {
		t.Errorf("bottom is reported worst-first: got %s, want f1", cmp.Bottom[0].FeatureID)
	}
	if !almostEqual(cmp.Mean, 40) {
		t.Errorf("mean = %g, want 40", cmp.Mean)
	}
	// Population variance of 10..70 step 10.
	if !almostEqual(cmp.Variance, 400) {
		t.Errorf("variance = %g, want 400", cmp.Variance)
	}
}

func TestCompareFeaturesSmallSet(t *testing.T) {
	cmp := scoring.CompareFeatures(map[string]float64{"a": 100, "b": 0})
	if len(cmp.Top) != 2 || len(cmp.Bottom) != 2 {
		t.Errorf("top/bottom sizes = %d/%d, want 2/2", len(cmp.Top), len(cmp.Bottom))
	}
	if !almostEqual(cmp.Variance, 2500) {
		t.Errorf("variance = %g, want 2500", cmp.Variance)
	}
}

func TestCompareFeaturesEmpty(t *testing.T) {
	cmp := scoring.CompareFeatures(nil)
	if len(cmp.Top) != 0 || len(cmp.Bottom) != 0 || cmp.Mean != 0 || cmp.Variance != 0 {
		t.Errorf("empty input = %+v, want zero value", cmp)
	}
}
