package searcher_di

import (
	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/lintang-b-s/foodmap-search/pkg/di/config"
	"github.com/lintang-b-s/foodmap-search/pkg/metrics"
	"github.com/lintang-b-s/foodmap-search/pkg/places"
	"github.com/lintang-b-s/foodmap-search/pkg/searcher"

	"go.uber.org/zap"
)

func New(cfg *config.Config, log *zap.Logger, client *places.Client, store places.DetailStore,
	m *metrics.Metrics) *searcher.Searcher {
	details := places.NewCachedDetails(client, store, log, m)

	return searcher.NewSearcher(log, client, client, details, searcher.Config{
		Language:      cfg.PlacesLanguage,
		Region:        cfg.PlacesRegion,
		Fallback:      datastructure.NewCoordinate(cfg.FallbackLat, cfg.FallbackLng),
		DetailWorkers: cfg.DetailsWorkers,
	})
}
