package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketPages = "pages"

type boltEntry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// BoltCache keeps cached pages in a local bbolt file so repeated CLI runs
// share one fetch within the TTL
type BoltCache struct {
	db  *bolt.DB
	now func() time.Time
}

// NewBoltCache opens (or creates) the cache file at path
func NewBoltCache(path string) (*BoltCache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening cache file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketPages)); err != nil {
			return fmt.Errorf("creating pages bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltCache{db: db, now: time.Now}, nil
}

// Close closes the cache file
func (c *BoltCache) Close() error {
	return c.db.Close()
}

// Get returns the stored value unless it has expired
func (c *BoltCache) Get(ctx context.Context, key string) (string, error) {
	var entry boltEntry
	found := false

	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketPages)).Get([]byte(key))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &entry)
	})
	if err != nil {
		return "", fmt.Errorf("reading cache entry: %w", err)
	}

	if !found || !c.now().Before(entry.ExpiresAt) {
		return "", ErrMiss
	}
	return entry.Value, nil
}

// Set stores value until now+ttl
func (c *BoltCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	data, err := json.Marshal(boltEntry{Value: value, ExpiresAt: c.now().Add(ttl)})
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPages)).Put([]byte(key), data)
	})
}

// Delete removes keys
func (c *BoltCache) Delete(ctx context.Context, keys ...string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPages))
		for _, key := range keys {
			if err := b.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
}
