// Package support implements version-aware support lookups and version
// range compression on top of the feature database.
package support

import (
	"math"

	"github.com/compatscope/compatscope/pkg/feature"
)

// Resolver answers "how well does browser B at version V support feature F"
// against one database snapshot. All lookups are total: missing data
// resolves to the unknown status rather than an error.
type Resolver struct {
	db *feature.Database
}

// NewResolver creates a Resolver over a database snapshot.
func NewResolver(db *feature.Database) *Resolver {
	return &Resolver{db: db}
}

// CheckSupport resolves the primary support status for one
// (feature, browser, version) triple.
//
// An exact version key wins. Otherwise the closest numerically comparable
// version is used: range keys ("4-4.1") compare by their lower bound,
// non-numeric keys are skipped, and distance ties prefer the lower version.
// A feature, browser, or requested version with no numeric interpretation
// resolves to StatusUnknown.
func (r *Resolver) CheckSupport(featureID, browser, version string) feature.StatusCode {
	f, ok := r.db.Get(featureID)
	if !ok {
		return feature.StatusUnknown
	}
	versions := f.Stats[browser]
	if len(versions) == 0 {
		return feature.StatusUnknown
	}

	if raw, ok := versions[version]; ok {
		return feature.PrimaryStatus(raw)
	}

	want, ok := feature.VersionKey(version)
	if !ok {
		return feature.StatusUnknown
	}

	bestKey := ""
	bestNum := 0.0
	bestDist := math.Inf(1)
	for v := range versions {
		num, ok := feature.VersionKey(v)
		if !ok {
			continue
		}
		dist := math.Abs(num - want)
		if dist < bestDist ||
			(dist == bestDist && num < bestNum) ||
			(dist == bestDist && num == bestNum && v < bestKey) {
			bestKey, bestNum, bestDist = v, num, dist
		}
	}
	if bestKey == "" {
		return feature.StatusUnknown
	}
	return feature.PrimaryStatus(versions[bestKey])
}

// CheckMultiple resolves a feature's status for every target browser.
func (r *Resolver) CheckMultiple(featureID string, targets map[string]string) map[string]feature.StatusCode {
	statuses := make(map[string]feature.StatusCode, len(targets))
	for browser, version := range targets {
		statuses[browser] = r.CheckSupport(featureID, browser, version)
	}
	return statuses
}
