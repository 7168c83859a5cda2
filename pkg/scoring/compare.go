package scoring

import "sort"

// CompareFeatures ranks a set of per-feature scores: the top five, the
// bottom five (worst first), the mean, and the population variance.
func CompareFeatures(scores map[string]float64) Comparison {
	var cmp Comparison
	if len(scores) == 0 {
		return cmp
	}

	ranked := make([]FeatureScore, 0, len(scores))
	var sum float64
	for id, score := range scores {
		ranked = append(ranked, FeatureScore{FeatureID: id, Score: score})
		sum += score
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].FeatureID < ranked[j].FeatureID
	})

	cmp.Mean = sum / float64(len(ranked))
	var sq float64
	for _, fs := range ranked {
		d := fs.Score - cmp.Mean
		sq += d * d
	}
	cmp.Variance = sq / float64(len(ranked))

	n := len(ranked)
	cmp.Top = append(cmp.Top, ranked[:minInt(5, n)]...)
	for i := n - 1; i >= n-minInt(5, n); i-- {
		cmp.Bottom = append(cmp.Bottom, ranked[i])
	}
	return cmp
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
