package http

import (
	"context"

	http_router "github.com/lintang-b-s/foodmap-search/pkg/http/http-router"
	"github.com/lintang-b-s/foodmap-search/pkg/http/http-router/controllers"
	http_server "github.com/lintang-b-s/foodmap-search/pkg/http/server"
	"github.com/lintang-b-s/foodmap-search/pkg/metrics"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log, g: &errgroup.Group{}}
}

func (s *Server) Use(
	ctx context.Context,
	config http_server.Config,
	searchService controllers.SearchService,
	store sessions.Store,
	m *metrics.Metrics,
	opts controllers.Options,
) (*Server, error) {
	api := http_router.NewAPI(s.Log)
	handler := api.Handler(searchService, store, m, opts)

	s.g.Go(func() error {
		return api.Run(ctx, config, handler)
	})

	return s, nil
}

// Wait blocks until the api server stops.
func (s *Server) Wait() error {
	return s.g.Wait()
}
