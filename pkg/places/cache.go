package places

import (
	"context"
	"errors"
	"time"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/lintang-b-s/foodmap-search/pkg/kvdb"
	"github.com/lintang-b-s/foodmap-search/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type DetailFetcher interface {
	Details(ctx context.Context, placeID, language string) (datastructure.DetailRecord, error)
}

// DetailStore returns kvdb.ErrorsKeyNotExists on a miss.
type DetailStore interface {
	GetDetail(key string) (datastructure.DetailRecord, error)
	PutDetail(key string, record datastructure.DetailRecord) error
}

// CachedDetails serves place details from store and only calls next on a miss.
// concurrent misses for the same key share one upstream call, which outlives the
// cancellation of any single waiter.
type CachedDetails struct {
	next    DetailFetcher
	store   DetailStore
	log     *zap.Logger
	metrics *metrics.Metrics
	timeout time.Duration // bound of one shared upstream lookup
	group   singleflight.Group
}

func NewCachedDetails(next DetailFetcher, store DetailStore, log *zap.Logger, m *metrics.Metrics) *CachedDetails {
	return &CachedDetails{
		next:    next,
		store:   store,
		log:     log,
		metrics: m,
		timeout: DEFAULT_TIMEOUT,
	}
}

func detailKey(placeID, language string) string {
	return placeID + "|" + language
}

func (c *CachedDetails) Details(ctx context.Context, placeID, language string) (datastructure.DetailRecord, error) {
	key := detailKey(placeID, language)

	record, err := c.store.GetDetail(key)
	if err == nil {
		c.metrics.CountDetailCache(true)
		return record, nil
	}
	if !errors.Is(err, kvdb.ErrorsKeyNotExists) {
		c.log.Warn("detail cache read failed", zap.String("key", key), zap.Error(err))
	}
	c.metrics.CountDetailCache(false)

	ch := c.group.DoChan(key, func() (any, error) {
		// another caller may have stored it between our miss and this call
		if record, err := c.store.GetDetail(key); err == nil {
			return record, nil
		}

		// shared by every waiter on key, so no single caller's cancellation may end it
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		record, err := c.next.Details(fetchCtx, placeID, language)
		if err != nil {
			return datastructure.DetailRecord{}, err
		}
		if err := c.store.PutDetail(key, record); err != nil {
			c.log.Warn("detail cache write failed", zap.String("key", key), zap.Error(err))
		}
		return record, nil
	})

	select {
	case <-ctx.Done():
		return datastructure.DetailRecord{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return datastructure.DetailRecord{}, res.Err
		}
		return res.Val.(datastructure.DetailRecord), nil
	}
}
