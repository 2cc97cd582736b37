package searcher

import (
	"math"
	"sort"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
)

// Rank sorts a copy of results by key. the sort is stable so equal keys keep the
// upstream order.
func Rank(results []datastructure.ScoredResult, key datastructure.SortKey) []datastructure.ScoredResult {
	ranked := make([]datastructure.ScoredResult, len(results))
	copy(ranked, results)

	var less func(i, j int) bool
	switch key {
	case datastructure.SortDistance:
		less = func(i, j int) bool {
			return distanceOrInf(ranked[i].DistanceKm) < distanceOrInf(ranked[j].DistanceKm)
		}
	case datastructure.SortRating:
		less = func(i, j int) bool {
			return ranked[i].RatingOrZero() > ranked[j].RatingOrZero()
		}
	default:
		less = func(i, j int) bool {
			return ranked[i].RecommendScore > ranked[j].RecommendScore
		}
	}

	sort.SliceStable(ranked, less)
	return ranked
}

func distanceOrInf(d *float64) float64 {
	if d == nil {
		return math.Inf(1)
	}
	return *d
}
