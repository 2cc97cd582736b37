package searcher

import (
	"context"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
)

// Geocoder resolves free text into a coordinate. (nil, nil) means zero results.
type Geocoder interface {
	Geocode(ctx context.Context, address, region string) (*datastructure.Coordinate, error)
}

// PlaceSearcher runs a places text search. the returned order is the tie-break
// baseline for every later sort.
type PlaceSearcher interface {
	TextSearch(ctx context.Context, query, language, region string) ([]datastructure.RawResult, error)
}

type DetailFetcher interface {
	Details(ctx context.Context, placeID, language string) (datastructure.DetailRecord, error)
}

// ProgressFunc is called after each detail lookup finishes.
type ProgressFunc func(done, total int)
