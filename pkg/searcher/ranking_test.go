package searcher

import (
	"testing"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func scored(id string, score float64, distanceKm, rating *float64, openNow *bool) datastructure.ScoredResult {
	return datastructure.ScoredResult{
		RawResult: datastructure.RawResult{
			ID:      id,
			Name:    id,
			Rating:  rating,
			OpenNow: openNow,
		},
		DistanceKm:     distanceKm,
		RecommendScore: score,
	}
}

func ids(results []datastructure.ScoredResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}

func TestRank(t *testing.T) {
	input := []datastructure.ScoredResult{
		scored("a", 50, ptr(2.0), ptr(4.0), nil),
		scored("b", 80, nil, nil, nil),
		scored("c", 50, ptr(1.0), ptr(4.0), nil),
		scored("d", 90, ptr(2.0), ptr(4.8), nil),
		scored("e", 10, nil, ptr(3.0), nil),
	}

	tests := []struct {
		name string
		key  datastructure.SortKey
		want []string
	}{
		{
			name: "recommendation descending, ties keep input order",
			key:  datastructure.SortRecommendation,
			want: []string{"d", "b", "a", "c", "e"},
		},
		{
			name: "distance ascending, unknown last, stable",
			key:  datastructure.SortDistance,
			want: []string{"c", "a", "d", "b", "e"},
		},
		{
			name: "rating descending, missing rating is zero",
			key:  datastructure.SortRating,
			want: []string{"d", "a", "c", "e", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(input, tt.key)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	t.Run("input is not reordered", func(t *testing.T) {
		_ = Rank(input, datastructure.SortDistance)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(input))
	})

	t.Run("rated venue sorts before unrated one", func(t *testing.T) {
		got := Rank([]datastructure.ScoredResult{
			scored("unrated", 0, nil, nil, nil),
			scored("rated", 0, nil, ptr(4.0), nil),
		}, datastructure.SortRating)
		assert.Equal(t, []string{"rated", "unrated"}, ids(got))
	})
}

func TestFilter(t *testing.T) {
	input := []datastructure.ScoredResult{
		scored("open", 0, nil, nil, ptr(true)),
		scored("closed", 0, nil, nil, ptr(false)),
		scored("unknown", 0, nil, nil, nil),
		scored("open2", 0, nil, nil, ptr(true)),
	}

	t.Run("hide closed keeps only confirmed open", func(t *testing.T) {
		got := Filter(input, true)
		assert.Equal(t, []string{"open", "open2"}, ids(got))
		for _, r := range got {
			assert.NotNil(t, r.OpenNow)
			assert.True(t, *r.OpenNow)
		}
	})

	t.Run("pass-through keeps order", func(t *testing.T) {
		got := Filter(input, false)
		assert.Equal(t, []string{"open", "closed", "unknown", "open2"}, ids(got))
	})
}
