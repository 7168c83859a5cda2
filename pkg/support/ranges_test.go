package support_test

import (
	"reflect"
	"testing"

	"github.com/compatscope/compatscope/pkg/feature"
)

func TestComputeRangesCompression(t *testing.T) {
	r := newResolver(t)

	// safari flexbox history: 3.1=n, 6.1="a x", 9=y, TP=y.
	ranges := r.ComputeRanges("flexbox", "safari")
	want := []feature.VersionRange{
		{Start: "3.1", End: "3.1", Status: feature.StatusUnsupported, StatusText: "Not supported"},
		{Start: "6.1", End: "6.1", Status: feature.StatusPartial, StatusText: "Partial support"},
		{Start: "9", End: "TP", Status: feature.StatusSupported, StatusText: "Supported"},
	}
	if !reflect.DeepEqual(ranges, want) {
		t.Errorf("ComputeRanges = %+v, want %+v", ranges, want)
	}
}

func TestComputeRangesInvariants(t *testing.T) {
	r := newResolver(t)

	for _, browser := range []string{"chrome", "firefox", "safari", "edge", "ie"} {
		ranges := r.ComputeRanges("css-grid", browser)
		for i := 1; i < len(ranges); i++ {
			if ranges[i].Status == ranges[i-1].Status {
				t.Errorf("%s: adjacent ranges share status %q", browser, ranges[i].Status)
			}
			if feature.VersionSortKey(ranges[i].Start) < feature.VersionSortKey(ranges[i-1].End) {
				t.Errorf("%s: ranges out of order at %d", browser, i)
			}
		}
		for _, rg := range ranges {
			if rg.StatusText != rg.Status.Text() {
				t.Errorf("%s: status_text %q does not match status %q", browser, rg.StatusText, rg.Status)
			}
		}
	}
}

func TestComputeRangesIdempotent(t *testing.T) {
	r := newResolver(t)
	first := r.ComputeRanges("flexbox", "ie")
	second := r.ComputeRanges("flexbox", "ie")
	if !reflect.DeepEqual(first, second) {
		t.Error("ComputeRanges must be a pure function of the support matrix")
	}
}

func TestComputeRangesEdgeCases(t *testing.T) {
	r := newResolver(t)

	// Empty matrix: empty list, not an error.
	if got := r.ComputeRanges("shadowdom", "safari"); len(got) != 0 {
		t.Errorf("empty matrix: got %d ranges, want 0", len(got))
	}
	// Unknown feature behaves the same.
	if got := r.ComputeRanges("no-such-feature", "chrome"); len(got) != 0 {
		t.Errorf("unknown feature: got %d ranges, want 0", len(got))
	}
	// Single version: one range with start == end.
	ranges := r.ComputeRanges("flexbox", "opera")
	if len(ranges) != 1 || ranges[0].Start != ranges[0].End {
		t.Errorf("single version: got %+v, want one range with start == end", ranges)
	}
}

func TestComputeRangesCoversEveryVersion(t *testing.T) {
	r := newResolver(t)

	// ie flexbox: 8=n, 9=n, 10="a x", 11=a → two ranges covering 4 versions.
	ranges := r.ComputeRanges("flexbox", "ie")
	want := []feature.VersionRange{
		{Start: "8", End: "9", Status: feature.StatusUnsupported, StatusText: "Not supported"},
		{Start: "10", End: "11", Status: feature.StatusPartial, StatusText: "Partial support"},
	}
	if !reflect.DeepEqual(ranges, want) {
		t.Errorf("ComputeRanges = %+v, want %+v", ranges, want)
	}
}

func TestSupportSummary(t *testing.T) {
	r := newResolver(t)

	summaries := r.SupportSummary("flexbox")
	safari, ok := summaries["safari"]
	if !ok {
		t.Fatal("expected a safari summary")
	}
	if safari.CurrentStatus != feature.StatusSupported {
		t.Errorf("current status = %q, want y", safari.CurrentStatus)
	}
	if safari.SupportedSince != "9" {
		t.Errorf("supported since = %q, want 9", safari.SupportedSince)
	}

	// ie never reaches full support.
	ie := summaries["ie"]
	if ie.SupportedSince != "" {
		t.Errorf("ie supported since = %q, want empty", ie.SupportedSince)
	}

	// Empty matrices are omitted.
	shadow := r.SupportSummary("shadowdom")
	if _, ok := shadow["safari"]; ok {
		t.Error("browser with empty matrix should be absent from the summary")
	}

	if r.SupportSummary("no-such-feature") != nil {
		t.Error("unknown feature summary should be nil")
	}
}
