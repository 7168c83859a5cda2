// Package compat implements the compatibility analysis engine. It resolves
// a feature set against target browsers and produces browser scores,
// per-feature severities, and an issue listing.
package compat

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/compatscope/compatscope/pkg/feature"
	"github.com/compatscope/compatscope/pkg/scoring"
	"github.com/compatscope/compatscope/pkg/support"
)

// Engine analyzes feature sets against a database snapshot.
type Engine struct {
	db       *feature.Database
	resolver *support.Resolver
}

// NewEngine creates an Engine over a database snapshot.
func NewEngine(db *feature.Database) *Engine {
	return &Engine{db: db, resolver: support.NewResolver(db)}
}

// Resolver exposes the engine's support resolver.
func (e *Engine) Resolver() *support.Resolver {
	return e.resolver
}

// BrowserScore is one browser's support breakdown over the analyzed
// feature set. Score is (supported*100 + partial*50) / total, or a vacuous
// 100 when the feature set is empty.
type BrowserScore struct {
	Browser     string  `json:"browser"`
	Version     string  `json:"version"`
	Supported   int     `json:"supported"`
	Partial     int     `json:"partial"`
	Unsupported int     `json:"unsupported"`
	Total       int     `json:"total"`
	Score       float64 `json:"score"`
}

// Report is the complete output of one analysis. Recomputed per call,
// never persisted. With zero target browsers the overall score is 0 and
// the grade follows it.
type Report struct {
	ID            string                                `json:"id"`
	AnalyzedAt    time.Time                             `json:"analyzed_at"`
	Features      []string                              `json:"features"`
	Targets       map[string]string                     `json:"targets"`
	BrowserScores map[string]BrowserScore               `json:"browser_scores"`
	OverallScore  float64                               `json:"overall_score"`
	Grade         string                                `json:"grade"` // fine 13-level scale
	Statuses      map[string]map[string]feature.StatusCode `json:"statuses"`   // feature -> browser -> status
	Severities    map[string]Severity                   `json:"severities"` // feature -> severity
}

type bucket int

const (
	bucketSupported bucket = iota
	bucketPartial
	bucketUnsupported
)

// bucketOf collapses the seven status codes into the three analysis
// buckets. Disabled-by-default counts as unsupported here even though the
// points table awards it partial credit.
func bucketOf(code feature.StatusCode) bucket {
	switch code {
	case feature.StatusSupported:
		return bucketSupported
	case feature.StatusPartial, feature.StatusPrefixed, feature.StatusPolyfill:
		return bucketPartial
	default:
		return bucketUnsupported
	}
}

// Analyze resolves every feature against every target browser. Unknown
// feature ids resolve to the unknown status in every browser; the call
// never fails once a database is loaded.
func (e *Engine) Analyze(features []string, targets map[string]string) *Report {
	rep := &Report{
		ID:            uuid.New().String(),
		AnalyzedAt:    time.Now().UTC(),
		Features:      append([]string(nil), features...),
		Targets:       targets,
		BrowserScores: make(map[string]BrowserScore, len(targets)),
		Statuses:      make(map[string]map[string]feature.StatusCode, len(features)),
		Severities:    make(map[string]Severity, len(features)),
	}
	sort.Strings(rep.Features)

	for _, id := range rep.Features {
		rep.Statuses[id] = e.resolver.CheckMultiple(id, targets)
		rep.Severities[id] = classifySeverity(rep.Statuses[id])
	}

	var scoreSum float64
	for browser, version := range targets {
		bs := BrowserScore{Browser: browser, Version: version, Total: len(rep.Features)}
		for _, id := range rep.Features {
			switch bucketOf(rep.Statuses[id][browser]) {
			case bucketSupported:
				bs.Supported++
			case bucketPartial:
				bs.Partial++
			default:
				bs.Unsupported++
			}
		}
		if bs.Total == 0 {
			bs.Score = 100.0 // vacuously compatible
		} else {
			bs.Score = float64(bs.Supported*100+bs.Partial*50) / float64(bs.Total)
		}
		rep.BrowserScores[browser] = bs
		scoreSum += bs.Score
	}

	if len(targets) > 0 {
		rep.OverallScore = scoreSum / float64(len(targets))
	}
	rep.Grade = scoring.FineGrade(rep.OverallScore)
	return rep
}
