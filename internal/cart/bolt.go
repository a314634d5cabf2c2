package cart

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var cartsBucket = []byte("carts")

// BoltPersister stores cart payloads in a single-file embedded key-value
// store, one key per session.
type BoltPersister struct {
	db *bolt.DB
}

// NewBoltPersister creates the carts bucket if needed and returns a persister
// backed by the given database.
func NewBoltPersister(db *bolt.DB) (*BoltPersister, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cartsBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create carts bucket: %w", err)
	}
	return &BoltPersister{db: db}, nil
}

func (p *BoltPersister) Load(key string) ([]byte, bool, error) {
	var payload []byte
	err := p.db.View(func(tx *bolt.Tx) error {
		stored := tx.Bucket(cartsBucket).Get([]byte(key))
		if stored != nil {
			payload = make([]byte, len(stored))
			copy(payload, stored)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to load cart %q: %w", key, err)
	}
	return payload, payload != nil, nil
}

func (p *BoltPersister) Save(key string, payload []byte) error {
	err := p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cartsBucket).Put([]byte(key), payload)
	})
	if err != nil {
		return fmt.Errorf("failed to save cart %q: %w", key, err)
	}
	return nil
}
