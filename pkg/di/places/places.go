package places_di

import (
	"github.com/lintang-b-s/foodmap-search/pkg/di/config"
	"github.com/lintang-b-s/foodmap-search/pkg/metrics"
	"github.com/lintang-b-s/foodmap-search/pkg/places"

	"go.uber.org/zap"
)

func New(cfg *config.Config, log *zap.Logger, m *metrics.Metrics) *places.Client {
	return places.NewClient(places.Config{
		APIKey:  cfg.GoogleMapsAPIKey,
		BaseURL: cfg.PlacesBaseURL,
		Timeout: cfg.UpstreamTimeout,
	}, log, m)
}
