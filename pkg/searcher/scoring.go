package searcher

import (
	"math"
	"strings"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
)

// Score computes the recommendation score of one venue on a 0..100 scale:
// distance 40, rating 50, type/keyword match 10. maxDistanceKm is the largest distance
// of the whole batch so the distance part is relative to the farthest venue.
func Score(result datastructure.RawResult, distanceKm *float64, maxDistanceKm float64,
	criteria datastructure.SearchCriteria) float64 {

	score := distanceScore(distanceKm, maxDistanceKm) +
		ratingScore(result.Rating) +
		typeScore(result.Types, criteria)

	return roundOneDecimal(score)
}

func distanceScore(distanceKm *float64, maxDistanceKm float64) float64 {
	if distanceKm == nil || !(maxDistanceKm > 0) {
		return NEUTRAL_DISTANCE_SCORE
	}
	ratio := clamp(*distanceKm/maxDistanceKm, 0, 1)
	return (1 - ratio) * DISTANCE_WEIGHT
}

func ratingScore(rating *float64) float64 {
	if rating == nil || math.IsNaN(*rating) {
		return 0
	}
	return clamp(*rating, 0, MAX_RATING) / MAX_RATING * RATING_WEIGHT
}

// typeScore. category wins over keyword; keyword only counts when category is blank.
func typeScore(types []string, criteria datastructure.SearchCriteria) float64 {
	term := strings.TrimSpace(criteria.Category)
	if term == "" {
		term = strings.TrimSpace(criteria.Keyword)
	}
	if term == "" {
		return 0
	}
	term = strings.ToLower(term)
	for _, t := range types {
		if strings.Contains(strings.ToLower(t), term) {
			return TYPE_WEIGHT
		}
	}
	return 0
}

// MaxDistance returns the largest known distance of the batch, 0 when none is known.
func MaxDistance(distances []*float64) float64 {
	max := 0.0
	for _, d := range distances {
		if d != nil && *d > max {
			max = *d
		}
	}
	return max
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
