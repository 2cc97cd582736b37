//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/foodmap-search/pkg/di/config"
	shortcontext "github.com/lintang-b-s/foodmap-search/pkg/di/context"
	kv_di "github.com/lintang-b-s/foodmap-search/pkg/di/kv"
	logger_di "github.com/lintang-b-s/foodmap-search/pkg/di/logger"
	places_di "github.com/lintang-b-s/foodmap-search/pkg/di/places"
	searcher_di "github.com/lintang-b-s/foodmap-search/pkg/di/searcher"
	session_di "github.com/lintang-b-s/foodmap-search/pkg/di/session"
	searchHttp "github.com/lintang-b-s/foodmap-search/pkg/http"
	"github.com/lintang-b-s/foodmap-search/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/foodmap-search/pkg/http/usecases"
	http_server "github.com/lintang-b-s/foodmap-search/pkg/http/server"
	"github.com/lintang-b-s/foodmap-search/pkg/metrics"
	"github.com/lintang-b-s/foodmap-search/pkg/searcher"

	"github.com/google/wire"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	config.New,
	logger_di.New,
	metrics.New,
	kv_di.New,
	places_di.New,
	searcher_di.New,
)

var searcherSet = wire.NewSet(
	defaultSet,
	shortcontext.New,
	session_di.New,
	wire.Bind(new(usecases.Searcher), new(*searcher.Searcher)),
	NewSearcherService,
	NewSearchAPIServer,
)

func NewSearcherService(log *zap.Logger, searcher usecases.Searcher, m *metrics.Metrics) controllers.SearchService {
	return usecases.New(log, searcher, m)
}

func NewSearchAPIServer(ctx context.Context, cfg *config.Config, log *zap.Logger,
	searchService controllers.SearchService, store sessions.Store, m *metrics.Metrics) (*searchHttp.Server, error) {
	api := searchHttp.NewServer(log)

	apiService, err := api.Use(
		ctx,
		http_server.Config{Port: cfg.APIPort, Timeout: cfg.APITimeout},
		searchService, store, m,
		controllers.Options{DefaultEnrichTop: cfg.DefaultEnrichTop},
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeSearcherService() (*searchHttp.Server, func(), error) {

	panic(wire.Build(searcherSet))
}

func InitializeSearcher() (*searcher.Searcher, func(), error) {

	panic(wire.Build(defaultSet))
}
