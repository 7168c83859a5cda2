package scoring

// SimpleScore is the arithmetic mean of the points table over a status map.
// An empty map scores 0.
func SimpleScore(statuses StatusMap) float64 {
	if len(statuses) == 0 {
		return 0
	}
	var sum float64
	for _, code := range statuses {
		sum += Points(code)
	}
	return sum / float64(len(statuses))
}

// Weighted computes the browser-weighted mean of a status map alongside the
// simple score and the raw per-browser breakdown. A nil weight set uses the
// defaults.
func Weighted(statuses StatusMap, weights *Weights) WeightedScore {
	if weights == nil {
		weights = DefaultWeights()
	}

	ws := WeightedScore{
		Simple:    SimpleScore(statuses),
		Breakdown: make(map[string]float64, len(statuses)),
	}
	var weightedSum, totalWeight float64
	for browser, code := range statuses {
		pts := Points(code)
		ws.Breakdown[browser] = pts
		w := weights.Get(browser)
		weightedSum += pts * w
		totalWeight += w
	}
	if totalWeight > 0 {
		ws.Weighted = weightedSum / totalWeight
	}
	return ws
}

// MarketShareScore weights each browser's points by its market share.
// Only browsers present in both maps count; no overlap scores 0.
func MarketShareScore(statuses StatusMap, shares map[string]float64) float64 {
	var weightedSum, totalShare float64
	for browser, code := range statuses {
		share, ok := shares[browser]
		if !ok {
			continue
		}
		weightedSum += Points(code) * share
		totalShare += share
	}
	if totalShare == 0 {
		return 0
	}
	return weightedSum / totalShare
}

// FeatureImportanceScore simple-scores each feature's status map, then
// averages across features weighted by externally supplied importance.
// Features without an importance entry weigh 1.0.
func FeatureImportanceScore(features map[string]StatusMap, importance map[string]float64) float64 {
	var weightedSum, totalWeight float64
	for id, statuses := range features {
		w := 1.0
		if imp, ok := importance[id]; ok {
			w = imp
		}
		weightedSum += SimpleScore(statuses) * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}

// Progressive splits a status map into modern and legacy browsers and
// scores each subset independently. The defaults are asymmetric: with no
// modern browsers the modern score is a vacuous 100, while no legacy
// browsers score 0. The overall score is the mean of the two.
func Progressive(statuses StatusMap, modern map[string]bool) ProgressiveScore {
	modernStatuses := StatusMap{}
	legacyStatuses := StatusMap{}
	for browser, code := range statuses {
		if modern[browser] {
			modernStatuses[browser] = code
		} else {
			legacyStatuses[browser] = code
		}
	}

	ps := ProgressiveScore{Modern: 100}
	if len(modernStatuses) > 0 {
		ps.Modern = SimpleScore(modernStatuses)
	}
	if len(legacyStatuses) > 0 {
		ps.Legacy = SimpleScore(legacyStatuses)
	}
	ps.Overall = (ps.Modern + ps.Legacy) / 2
	return ps
}
