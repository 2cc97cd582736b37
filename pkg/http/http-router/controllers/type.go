package controllers

import (
	"context"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/lintang-b-s/foodmap-search/pkg/searcher"
)

type SearchService interface {
	Search(ctx context.Context, criteria datastructure.SearchCriteria, userLocation *datastructure.Coordinate) (searcher.Outcome, error)
	Details(ctx context.Context, placeID, language string) (datastructure.DetailRecord, error)
}
