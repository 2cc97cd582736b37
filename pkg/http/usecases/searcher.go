package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/lintang-b-s/foodmap-search/pkg/searcher"

	"go.uber.org/zap"
)

const statusFailed = "failed"

type SearcherService struct {
	log      *zap.Logger
	searcher Searcher
	counter  SearchCounter
}

func New(log *zap.Logger, searcher Searcher, counter SearchCounter) *SearcherService {
	return &SearcherService{
		log:      log,
		searcher: searcher,
		counter:  counter,
	}
}

func (s *SearcherService) Search(ctx context.Context, criteria datastructure.SearchCriteria,
	userLocation *datastructure.Coordinate) (searcher.Outcome, error) {
	outcome, err := s.searcher.Search(ctx, criteria, userLocation)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.count(statusFailed)
		}
		return outcome, err
	}
	s.count(string(outcome.Status))
	for _, w := range outcome.Warnings {
		s.log.Info("search warning", zap.String("query", outcome.Query), zap.String("warning", w))
	}
	return outcome, nil
}

func (s *SearcherService) Details(ctx context.Context, placeID, language string) (datastructure.DetailRecord, error) {
	return s.searcher.Details(ctx, placeID, language)
}

func (s *SearcherService) count(status string) {
	if s.counter != nil {
		s.counter.CountSearch(status)
	}
}
