package kvdb

import (
	"time"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"

	"github.com/patrickmn/go-cache"
)

// MemoryStore is the in-process detail cache used when no cache file is configured.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &MemoryStore{c: cache.New(ttl, cleanupInterval)}
}

func (s *MemoryStore) PutDetail(key string, record datastructure.DetailRecord) error {
	s.c.Set(key, record, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) GetDetail(key string) (datastructure.DetailRecord, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return datastructure.DetailRecord{}, ErrorsKeyNotExists
	}
	record, ok := v.(datastructure.DetailRecord)
	if !ok {
		return datastructure.DetailRecord{}, ErrorsKeyNotExists
	}
	return record, nil
}
