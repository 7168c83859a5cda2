package compat

import (
	"sort"
	"strings"

	"github.com/compatscope/compatscope/pkg/feature"
)

// Severity classifies how badly one feature fares across all target
// browsers.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL" // unsupported everywhere
	SeverityHigh     Severity = "HIGH"     // unsupported in at least half the targets
	SeverityMedium   Severity = "MEDIUM"   // some gap, below the HIGH threshold
	SeverityLow      Severity = "LOW"      // fully supported everywhere
	SeverityInfo     Severity = "INFO"
)

var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
	SeverityInfo:     4,
}

// Rank returns the sort rank of a severity; CRITICAL sorts first.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

func classifySeverity(statuses map[string]feature.StatusCode) Severity {
	total := len(statuses)
	if total == 0 {
		return SeverityLow
	}
	var partial, unsupported int
	for _, code := range statuses {
		switch bucketOf(code) {
		case bucketPartial:
			partial++
		case bucketUnsupported:
			unsupported++
		}
	}
	switch {
	case unsupported == total:
		return SeverityCritical
	case unsupported*2 >= total:
		return SeverityHigh
	case unsupported > 0 || partial > 0:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Issue is one feature's compatibility problem in a report. Ephemeral,
// computed per analysis.
type Issue struct {
	FeatureID        string                        `json:"feature_id"`
	Name             string                        `json:"name"`
	Severity         Severity                      `json:"severity"`
	BrowsersAffected []string                      `json:"browsers_affected"`
	Statuses         map[string]feature.StatusCode `json:"statuses"`
	Category         string                        `json:"category,omitempty"`
	Workaround       string                        `json:"workaround,omitempty"`
}

// DetailedIssues builds one issue per analyzed feature, drops LOW and INFO,
// and sorts the rest by severity rank (CRITICAL first), then feature id.
func (e *Engine) DetailedIssues(rep *Report) []Issue {
	var issues []Issue
	for _, id := range rep.Features {
		sev := rep.Severities[id]
		if sev == SeverityLow || sev == SeverityInfo {
			continue
		}

		issue := Issue{
			FeatureID: id,
			Name:      id,
			Severity:  sev,
			Statuses:  rep.Statuses[id],
		}
		if f, ok := e.db.Get(id); ok {
			if f.Title != "" {
				issue.Name = f.Title
			}
			if len(f.Categories) > 0 {
				issue.Category = f.Categories[0]
			}
		}
		for browser, code := range issue.Statuses {
			if code != feature.StatusSupported {
				issue.BrowsersAffected = append(issue.BrowsersAffected, browser)
			}
		}
		sort.Strings(issue.BrowsersAffected)
		issue.Workaround = strings.Join(e.SuggestWorkarounds(issue), " ")
		issues = append(issues, issue)
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Severity.Rank() != issues[j].Severity.Rank() {
			return issues[i].Severity.Rank() < issues[j].Severity.Rank()
		}
		return issues[i].FeatureID < issues[j].FeatureID
	})
	return issues
}

// SuggestWorkarounds produces advisory remediation text for one issue: a
// polyfill hint when any browser reports polyfill support, a prefix-tooling
// hint when any requires a vendor prefix, and the feature's own notes.
func (e *Engine) SuggestWorkarounds(issue Issue) []string {
	var hasPolyfill, hasPrefix bool
	for _, code := range issue.Statuses {
		switch code {
		case feature.StatusPolyfill:
			hasPolyfill = true
		case feature.StatusPrefixed:
			hasPrefix = true
		}
	}

	var suggestions []string
	if hasPolyfill {
		suggestions = append(suggestions,
			"A polyfill is available for this feature; include it for browsers without native support.")
	}
	if hasPrefix {
		suggestions = append(suggestions,
			"Some browsers need a vendor prefix; run the stylesheet through a prefixing tool such as autoprefixer.")
	}
	if f, ok := e.db.Get(issue.FeatureID); ok && f.Notes != "" {
		suggestions = append(suggestions, f.Notes)
	}
	return suggestions
}
