package kvdb

import (
	"errors"
	"fmt"
	"time"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"

	"github.com/klauspost/compress/s2"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_DETAILS_BUCKET = "placeDetails"
)

type storedDetail struct {
	Record   datastructure.DetailRecord `msgpack:"record"`
	StoredAt int64                      `msgpack:"stored_at"` // unix seconds
}

// KVDB keeps place details in bbolt so they survive restarts. values are msgpack,
// s2 compressed.
type KVDB struct {
	db  *bbolt.DB
	ttl time.Duration
	now func() time.Time
}

func NewKVDB(db *bbolt.DB, ttl time.Duration) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_DETAILS_BUCKET))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create bucket %s: %w", BBOLTDB_DETAILS_BUCKET, err)
	}
	return &KVDB{db: db, ttl: ttl, now: time.Now}, nil
}

func (db *KVDB) PutDetail(key string, record datastructure.DetailRecord) error {
	value, err := serializeDetail(storedDetail{Record: record, StoredAt: db.now().Unix()})
	if err != nil {
		return err
	}
	return db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_DETAILS_BUCKET))
		return b.Put([]byte(key), value)
	})
}

// GetDetail returns ErrorsKeyNotExists for missing or expired entries.
func (db *KVDB) GetDetail(key string) (record datastructure.DetailRecord, err error) {
	var stored storedDetail
	err = db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_DETAILS_BUCKET))
		value := b.Get([]byte(key))
		if value == nil {
			return ErrorsKeyNotExists
		}
		// value is only valid inside the transaction, deserialize copies it
		stored, err = deserializeDetail(value)
		return err
	})
	if err != nil {
		return datastructure.DetailRecord{}, err
	}

	if db.ttl > 0 && db.now().Sub(time.Unix(stored.StoredAt, 0)) > db.ttl {
		return datastructure.DetailRecord{}, ErrorsKeyNotExists
	}
	return stored.Record, nil
}

func serializeDetail(d storedDetail) ([]byte, error) {
	raw, err := msgpack.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode detail: %w", err)
	}
	return s2.Encode(nil, raw), nil
}

func deserializeDetail(buf []byte) (storedDetail, error) {
	var d storedDetail
	raw, err := s2.Decode(nil, buf)
	if err != nil {
		return d, fmt.Errorf("decompress detail: %w", err)
	}
	if err := msgpack.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("decode detail: %w", err)
	}
	return d, nil
}
