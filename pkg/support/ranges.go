package support

import (
	"sort"

	"github.com/compatscope/compatscope/pkg/feature"
)

// BrowserSummary condenses one browser's full version history for a feature.
type BrowserSummary struct {
	CurrentStatus     feature.StatusCode     `json:"current_status"`
	CurrentStatusText string                 `json:"current_status_text"`
	SupportedSince    string                 `json:"supported_since,omitempty"`
	Ranges            []feature.VersionRange `json:"ranges"`
}

// ComputeRanges compresses a browser's version history for a feature into
// the minimal ordered list of same-status ranges. Versions order by numeric
// key, with non-numeric channels (preview builds) sorted last; equal keys
// order by raw string so the result is a pure function of the matrix.
//
// An empty support matrix yields an empty list; a single version yields one
// range with Start == End.
func (r *Resolver) ComputeRanges(featureID, browser string) []feature.VersionRange {
	f, ok := r.db.Get(featureID)
	if !ok {
		return nil
	}
	stats := f.Stats[browser]
	if len(stats) == 0 {
		return nil
	}

	type entry struct {
		version string
		key     float64
		status  feature.StatusCode
	}
	entries := make([]entry, 0, len(stats))
	for v, raw := range stats {
		entries = append(entries, entry{
			version: v,
			key:     feature.VersionSortKey(v),
			status:  feature.PrimaryStatus(raw),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return entries[i].key < entries[j].key
		}
		return entries[i].version < entries[j].version
	})

	var ranges []feature.VersionRange
	start := entries[0]
	prev := entries[0]
	for _, e := range entries[1:] {
		if e.status != prev.status {
			ranges = append(ranges, newRange(start.version, prev.version, prev.status))
			start = e
		}
		prev = e
	}
	ranges = append(ranges, newRange(start.version, prev.version, prev.status))
	return ranges
}

func newRange(start, end string, status feature.StatusCode) feature.VersionRange {
	return feature.VersionRange{
		Start:      start,
		End:        end,
		Status:     status,
		StatusText: status.Text(),
	}
}

// SupportSummary computes a per-browser summary for a feature: the current
// (latest-range) status and the first version with full support, if any.
func (r *Resolver) SupportSummary(featureID string) map[string]BrowserSummary {
	f, ok := r.db.Get(featureID)
	if !ok {
		return nil
	}

	summaries := make(map[string]BrowserSummary, len(f.Stats))
	for browser := range f.Stats {
		ranges := r.ComputeRanges(featureID, browser)
		if len(ranges) == 0 {
			continue
		}
		s := BrowserSummary{
			CurrentStatus:     ranges[len(ranges)-1].Status,
			CurrentStatusText: ranges[len(ranges)-1].StatusText,
			Ranges:            ranges,
		}
		for _, rg := range ranges {
			if rg.Status == feature.StatusSupported {
				s.SupportedSince = rg.Start
				break
			}
		}
		summaries[browser] = s
	}
	return summaries
}
