package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"time"

	"crudapi/internal/resource"

	"github.com/boltdb/bolt"
)

// OpenBolt opens (creating if needed) the bolt file at path.
func OpenBolt(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt file: %w", err)
	}
	return db, nil
}

// BoltCollection stores one entity type in a bolt bucket, gob-encoded and
// keyed by the big-endian identifier so cursor order is identifier order.
type BoltCollection[T any] struct {
	db     *bolt.DB
	schema Schema[T]
	bucket []byte
}

// NewBolt creates the bucket for schema.Table if it does not exist.
func NewBolt[T any](db *bolt.DB, schema Schema[T]) (*BoltCollection[T], error) {
	c := &BoltCollection[T]{db: db, schema: schema, bucket: []byte(schema.Table)}
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(c.bucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create bucket %s: %w", schema.Table, err)
	}
	return c, nil
}

func (c *BoltCollection[T]) List(_ context.Context) ([]T, error) {
	out := []T{}
	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(c.bucket).ForEach(func(_, value []byte) error {
			item, err := c.decode(value)
			if err != nil {
				return err
			}
			out = append(out, item)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.schema.Table, err)
	}
	return out, nil
}

func (c *BoltCollection[T]) Get(_ context.Context, id int64) (T, error) {
	var item T
	found := false
	err := c.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(c.bucket).Get(key(id))
		if value == nil {
			return nil
		}
		found = true
		var err error
		item, err = c.decode(value)
		return err
	})
	if err != nil {
		return item, fmt.Errorf("get %s %d: %w", c.schema.Table, id, err)
	}
	if !found {
		return item, resource.ErrNotFound
	}
	return item, nil
}

func (c *BoltCollection[T]) Insert(_ context.Context, item T) (T, error) {
	err := c.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(c.bucket)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		c.schema.SetID(&item, int64(seq))
		value, err := c.encode(item)
		if err != nil {
			return err
		}
		return bucket.Put(key(int64(seq)), value)
	})
	if err != nil {
		return item, fmt.Errorf("insert %s: %w", c.schema.Table, err)
	}
	return item, nil
}

func (c *BoltCollection[T]) Replace(_ context.Context, item T) error {
	id := c.schema.ID(item)
	found := false
	err := c.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(c.bucket)
		if bucket.Get(key(id)) == nil {
			return nil
		}
		found = true
		value, err := c.encode(item)
		if err != nil {
			return err
		}
		return bucket.Put(key(id), value)
	})
	if err != nil {
		return fmt.Errorf("update %s %d: %w", c.schema.Table, id, err)
	}
	if !found {
		return resource.ErrNotFound
	}
	return nil
}

func (c *BoltCollection[T]) Remove(_ context.Context, id int64) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(c.bucket).Delete(key(id))
	})
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", c.schema.Table, id, err)
	}
	return nil
}

// Clear deletes every key but keeps the bucket, so its sequence keeps counting.
func (c *BoltCollection[T]) Clear(_ context.Context) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(c.bucket)
		var keys [][]byte
		if err := bucket.ForEach(func(k, _ []byte) error {
			keys = append(keys, append([]byte(nil), k...))
			return nil
		}); err != nil {
			return err
		}
		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear %s: %w", c.schema.Table, err)
	}
	return nil
}

func (c *BoltCollection[T]) encode(item T) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(item); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *BoltCollection[T]) decode(value []byte) (T, error) {
	var item T
	err := gob.NewDecoder(bytes.NewReader(value)).Decode(&item)
	return item, err
}

func key(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}
