package seedstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	bolt "go.etcd.io/bbolt"
)

var failuresBucket = []byte("failures")

// Bolt stores failures in a bbolt file, keyed by fingerprint.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the bbolt file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(failuresBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Record(_ context.Context, f Failure) error {
	f = normalize(f)
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode failure: %w", err)
	}
	return b.update(func(bkt *bolt.Bucket) error {
		key := []byte(f.Fingerprint)
		if bkt.Get(key) != nil {
			return nil
		}
		return bkt.Put(key, data)
	})
}

func (b *Bolt) Seeds(ctx context.Context, property string) ([]int64, error) {
	all, err := b.List(ctx)
	if err != nil {
		return nil, err
	}
	var seeds []int64
	for _, f := range all {
		if f.Property == property {
			seeds = append(seeds, f.Seed)
		}
	}
	return seeds, nil
}

func (b *Bolt) List(_ context.Context) ([]Failure, error) {
	var all []Failure
	err := b.view(func(bkt *bolt.Bucket) error {
		return bkt.ForEach(func(k, v []byte) error {
			var f Failure
			if err := json.Unmarshal(v, &f); err != nil {
				return fmt.Errorf("failed to decode failure %s: %w", k, err)
			}
			all = append(all, f)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortFailures(all)
	return all, nil
}

func (b *Bolt) Forget(_ context.Context, property string, seeds ...int64) (int, error) {
	removed := 0
	err := b.update(func(bkt *bolt.Bucket) error {
		var doomed [][]byte
		err := bkt.ForEach(func(k, v []byte) error {
			var f Failure
			if err := json.Unmarshal(v, &f); err != nil {
				return fmt.Errorf("failed to decode failure %s: %w", k, err)
			}
			if f.Property == property && (len(seeds) == 0 || slices.Contains(seeds, f.Seed)) {
				doomed = append(doomed, slices.Clone(k))
			}
			return nil
		})
		if err != nil {
			return err
		}
		// Deleting inside ForEach invalidates the cursor.
		for _, k := range doomed {
			if err := bkt.Delete(k); err != nil {
				return err
			}
		}
		removed = len(doomed)
		return nil
	})
	return removed, err
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) update(fn func(*bolt.Bucket) error) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(failuresBucket))
	})
	return mapBoltErr(err)
}

func (b *Bolt) view(fn func(*bolt.Bucket) error) error {
	err := b.db.View(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(failuresBucket))
	})
	return mapBoltErr(err)
}

func mapBoltErr(err error) error {
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}
	return err
}
