package kv_di

import (
	"fmt"
	"time"

	"github.com/lintang-b-s/foodmap-search/pkg/di/config"
	"github.com/lintang-b-s/foodmap-search/pkg/kvdb"
	"github.com/lintang-b-s/foodmap-search/pkg/places"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// New picks the bbolt store when DETAILS_CACHE_PATH is set, else the in-memory one.
func New(cfg *config.Config, log *zap.Logger) (places.DetailStore, func(), error) {
	if cfg.DetailsCachePath == "" {
		log.Info("using in-memory place details cache", zap.Duration("ttl", cfg.DetailsCacheTTL))
		return kvdb.NewMemoryStore(cfg.DetailsCacheTTL, 10*time.Minute), func() {}, nil
	}

	db, err := bolt.Open(cfg.DetailsCachePath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, nil, fmt.Errorf("open details cache %s: %w", cfg.DetailsCachePath, err)
	}

	bboltKV, err := kvdb.NewKVDB(db, cfg.DetailsCacheTTL)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = db.Close()
	}

	log.Info("using bbolt place details cache", zap.String("path", cfg.DetailsCachePath))
	return bboltKV, cleanup, nil
}
