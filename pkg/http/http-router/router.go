package http_router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	_ "github.com/lintang-b-s/foodmap-search/docs"
	"github.com/lintang-b-s/foodmap-search/pkg/http/http-router/controllers"
	router_helper "github.com/lintang-b-s/foodmap-search/pkg/http/http-router/router-helper"
	http_server "github.com/lintang-b-s/foodmap-search/pkg/http/server"
	"github.com/lintang-b-s/foodmap-search/pkg/metrics"

	"github.com/gorilla/sessions"
	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler builds the router wrapped in the middleware chain.
func (api *API) Handler(
	searchService controllers.SearchService,
	store sessions.Store,
	m *metrics.Metrics,
	opts controllers.Options,
) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", requestIDHeader},
		ExposedHeaders:   []string{"Link", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	group := router_helper.NewRouteGroup(router, "/api")

	searcherRoutes := controllers.New(searchService, store, api.log, opts)
	searcherRoutes.Routes(group)

	router.Handler(http.MethodGet, "/metrics", m.Handler())
	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.WrapHandler)

	return alice.New(corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), RequestID, Logger(api.log), m.Instrument).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	handler http.Handler,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, handler, config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
