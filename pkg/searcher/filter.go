package searcher

import "github.com/lintang-b-s/foodmap-search/pkg/datastructure"

// Filter drops venues that are not confirmed open when hideClosed is set.
// unknown opening state counts as not open.
func Filter(results []datastructure.ScoredResult, hideClosed bool) []datastructure.ScoredResult {
	if !hideClosed {
		return results
	}
	filtered := make([]datastructure.ScoredResult, 0, len(results))
	for _, r := range results {
		if r.IsOpen() {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
