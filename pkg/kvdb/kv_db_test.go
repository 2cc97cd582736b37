package kvdb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openTestDB(t *testing.T, ttl time.Duration) *KVDB {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "details.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	kv, err := NewKVDB(db, ttl)
	require.NoError(t, err)
	return kv
}

func TestKVDBDetails(t *testing.T) {
	phone := "02 2311 1234"
	record := datastructure.DetailRecord{
		Phone:       &phone,
		WeeklyHours: []string{"Monday: 11:00 – 21:00", "Tuesday: Closed"},
	}

	t.Run("stored record comes back", func(t *testing.T) {
		kv := openTestDB(t, time.Hour)
		require.NoError(t, kv.PutDetail("ChIJ123|en", record))

		got, err := kv.GetDetail("ChIJ123|en")
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("missing key", func(t *testing.T) {
		kv := openTestDB(t, time.Hour)
		_, err := kv.GetDetail("nope")
		assert.ErrorIs(t, err, ErrorsKeyNotExists)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		kv := openTestDB(t, time.Minute)
		now := time.Now()
		kv.now = func() time.Time { return now }
		require.NoError(t, kv.PutDetail("old", record))

		kv.now = func() time.Time { return now.Add(2 * time.Minute) }
		_, err := kv.GetDetail("old")
		assert.ErrorIs(t, err, ErrorsKeyNotExists)
	})

	t.Run("record without phone", func(t *testing.T) {
		kv := openTestDB(t, 0)
		empty := datastructure.DetailRecord{WeeklyHours: []string{}}
		require.NoError(t, kv.PutDetail("empty", empty))

		got, err := kv.GetDetail("empty")
		require.NoError(t, err)
		assert.Nil(t, got.Phone)
		assert.Empty(t, got.WeeklyHours)
	})
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(time.Minute, time.Minute)
	_, err := s.GetDetail("a")
	assert.ErrorIs(t, err, ErrorsKeyNotExists)

	require.NoError(t, s.PutDetail("a", datastructure.DetailRecord{WeeklyHours: []string{"x"}}))
	got, err := s.GetDetail("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.WeeklyHours)
}
