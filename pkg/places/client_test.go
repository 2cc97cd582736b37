package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/lintang-b-s/foodmap-search/pkg/kvdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const textSearchBody = `{
	"status": "OK",
	"next_page_token": "ignored",
	"results": [
		{
			"place_id": "p1",
			"name": "鼎王麻辣鍋",
			"formatted_address": "台北市中山區中山北路一段",
			"geometry": {"location": {"lat": 25.05, "lng": 121.52}},
			"rating": 4.5,
			"types": ["restaurant", "food"],
			"opening_hours": {"open_now": true}
		},
		{
			"place_id": "p2",
			"name": "Somewhere",
			"vicinity": "Zhongshan",
			"types": ["food"]
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 2 * time.Second}, zap.NewNop(), nil)
}

func TestTextSearch(t *testing.T) {
	t.Run("parses results in upstream order", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, textSearchPath, r.URL.Path)
			assert.Equal(t, "中山 火鍋", r.URL.Query().Get("query"))
			assert.Equal(t, "zh-TW", r.URL.Query().Get("language"))
			assert.Equal(t, "tw", r.URL.Query().Get("region"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(textSearchBody))
		})

		results, err := c.TextSearch(context.Background(), "中山 火鍋", "zh-TW", "tw")
		require.NoError(t, err)
		require.Len(t, results, 2)

		first := results[0]
		assert.Equal(t, "p1", first.ID)
		assert.Equal(t, "台北市中山區中山北路一段", first.Address)
		require.NotNil(t, first.Coordinate)
		assert.Equal(t, datastructure.NewCoordinate(25.05, 121.52), *first.Coordinate)
		require.NotNil(t, first.Rating)
		assert.Equal(t, 4.5, *first.Rating)
		require.NotNil(t, first.OpenNow)
		assert.True(t, *first.OpenNow)

		second := results[1]
		assert.Equal(t, "Zhongshan", second.Address)
		assert.Nil(t, second.Coordinate)
		assert.Nil(t, second.Rating)
		assert.Nil(t, second.OpenNow)
	})

	t.Run("zero results is not an error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		})
		results, err := c.TextSearch(context.Background(), "nothing", "en", "tw")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		_, err := c.TextSearch(context.Background(), "ramen", "en", "tw")
		assert.ErrorIs(t, err, ErrUpstreamStatus)
	})

	t.Run("malformed json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "OK", "results": [`))
		})
		_, err := c.TextSearch(context.Background(), "ramen", "en", "tw")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("request denied", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`))
		})
		_, err := c.TextSearch(context.Background(), "ramen", "en", "tw")
		assert.ErrorIs(t, err, ErrAPIStatus)
		assert.Contains(t, err.Error(), "API key is invalid")
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			_, _ = w.Write([]byte(`{"status":"OK","results":[]}`))
		}))
		defer srv.Close()
		c := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, zap.NewNop(), nil)

		_, err := c.TextSearch(context.Background(), "ramen", "en", "tw")
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request must not be sent")
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.TextSearch(ctx, "ramen", "en", "tw")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGeocode(t *testing.T) {
	t.Run("first result", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, geocodePath, r.URL.Path)
			assert.Equal(t, "台北車站", r.URL.Query().Get("address"))
			_, _ = w.Write([]byte(`{"status":"OK","results":[
				{"geometry":{"location":{"lat":25.0478,"lng":121.5170}}},
				{"geometry":{"location":{"lat":1,"lng":1}}}
			]}`))
		})
		coord, err := c.Geocode(context.Background(), "台北車站", "tw")
		require.NoError(t, err)
		require.NotNil(t, coord)
		assert.Equal(t, datastructure.NewCoordinate(25.0478, 121.5170), *coord)
	})

	t.Run("zero results", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		})
		coord, err := c.Geocode(context.Background(), "Atlantis", "tw")
		require.NoError(t, err)
		assert.Nil(t, coord)
	})
}

func TestDetails(t *testing.T) {
	t.Run("phone and hours", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, detailsPath, r.URL.Path)
			assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
			assert.Equal(t, detailFields, r.URL.Query().Get("fields"))
			_, _ = w.Write([]byte(`{"status":"OK","result":{
				"formatted_phone_number":"02 2511 2345",
				"opening_hours":{"weekday_text":["Monday: 11:30 AM – 12:00 AM"]}
			}}`))
		})
		record, err := c.Details(context.Background(), "p1", "en")
		require.NoError(t, err)
		require.NotNil(t, record.Phone)
		assert.Equal(t, "02 2511 2345", *record.Phone)
		assert.Equal(t, []string{"Monday: 11:30 AM – 12:00 AM"}, record.WeeklyHours)
	})

	t.Run("missing fields are absent, not errors", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"OK","result":{}}`))
		})
		record, err := c.Details(context.Background(), "p1", "en")
		require.NoError(t, err)
		assert.Nil(t, record.Phone)
		assert.Empty(t, record.WeeklyHours)
	})

	t.Run("unknown place", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"NOT_FOUND"}`))
		})
		record, err := c.Details(context.Background(), "gone", "en")
		require.NoError(t, err)
		assert.Nil(t, record.Phone)
	})
}

type countingFetcher struct {
	calls atomic.Int32
	err   error
}

func (f *countingFetcher) Details(_ context.Context, placeID, _ string) (datastructure.DetailRecord, error) {
	f.calls.Add(1)
	if f.err != nil {
		return datastructure.DetailRecord{}, f.err
	}
	phone := "tel:" + placeID
	return datastructure.DetailRecord{Phone: &phone, WeeklyHours: []string{}}, nil
}

// blockingFetcher holds every lookup until release is closed and fails lookups whose
// context ended first.
type blockingFetcher struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func newBlockingFetcher() *blockingFetcher {
	return &blockingFetcher{started: make(chan struct{}, 8), release: make(chan struct{})}
}

func (f *blockingFetcher) Details(ctx context.Context, placeID, _ string) (datastructure.DetailRecord, error) {
	f.calls.Add(1)
	f.started <- struct{}{}
	select {
	case <-ctx.Done():
		return datastructure.DetailRecord{}, ctx.Err()
	case <-f.release:
	}
	phone := "tel:" + placeID
	return datastructure.DetailRecord{Phone: &phone, WeeklyHours: []string{}}, nil
}

// racyStore misses on the first read only, like a store written by another caller right
// after our lookup.
type racyStore struct {
	*kvdb.MemoryStore
	reads atomic.Int32
}

func (s *racyStore) GetDetail(key string) (datastructure.DetailRecord, error) {
	if s.reads.Add(1) == 1 {
		return datastructure.DetailRecord{}, kvdb.ErrorsKeyNotExists
	}
	return s.MemoryStore.GetDetail(key)
}

func TestCachedDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated lookups hit the cache", func(t *testing.T) {
		next := &countingFetcher{}
		cached := NewCachedDetails(next, kvdb.NewMemoryStore(time.Hour, time.Hour), zap.NewNop(), nil)

		for i := 0; i < 3; i++ {
			record, err := cached.Details(ctx, "p1", "en")
			require.NoError(t, err)
			assert.Equal(t, "tel:p1", *record.Phone)
		}
		assert.Equal(t, int32(1), next.calls.Load())

		_, err := cached.Details(ctx, "p1", "zh-TW")
		require.NoError(t, err)
		assert.Equal(t, int32(2), next.calls.Load())
	})

	t.Run("failures are not cached", func(t *testing.T) {
		next := &countingFetcher{err: errors.New("upstream down")}
		cached := NewCachedDetails(next, kvdb.NewMemoryStore(time.Hour, time.Hour), zap.NewNop(), nil)

		_, err := cached.Details(ctx, "p1", "en")
		assert.Error(t, err)
		_, err = cached.Details(ctx, "p1", "en")
		assert.Error(t, err)
		assert.Equal(t, int32(2), next.calls.Load())
	})

	t.Run("a cancelled waiter does not fail the others", func(t *testing.T) {
		next := newBlockingFetcher()
		cached := NewCachedDetails(next, kvdb.NewMemoryStore(time.Hour, time.Hour), zap.NewNop(), nil)

		firstCtx, cancelFirst := context.WithCancel(ctx)
		firstErr := make(chan error, 1)
		go func() {
			_, err := cached.Details(firstCtx, "p1", "en")
			firstErr <- err
		}()
		<-next.started

		type result struct {
			record datastructure.DetailRecord
			err    error
		}
		second := make(chan result, 1)
		go func() {
			record, err := cached.Details(ctx, "p1", "en")
			second <- result{record, err}
		}()

		cancelFirst()
		assert.ErrorIs(t, <-firstErr, context.Canceled)

		close(next.release)
		res := <-second
		require.NoError(t, res.err)
		require.NotNil(t, res.record.Phone)
		assert.Equal(t, "tel:p1", *res.record.Phone)
		assert.Equal(t, int32(1), next.calls.Load())

		record, err := cached.Details(ctx, "p1", "en")
		require.NoError(t, err)
		assert.Equal(t, "tel:p1", *record.Phone)
		assert.Equal(t, int32(1), next.calls.Load())
	})

	t.Run("a record stored after the first miss is not fetched again", func(t *testing.T) {
		store := &racyStore{MemoryStore: kvdb.NewMemoryStore(time.Hour, time.Hour)}
		phone := "tel:stored"
		require.NoError(t, store.PutDetail(detailKey("p1", "en"), datastructure.DetailRecord{Phone: &phone}))

		next := &countingFetcher{}
		cached := NewCachedDetails(next, store, zap.NewNop(), nil)

		record, err := cached.Details(ctx, "p1", "en")
		require.NoError(t, err)
		assert.Equal(t, "tel:stored", *record.Phone)
		assert.Zero(t, next.calls.Load())
	})
}
