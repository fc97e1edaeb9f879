package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
)

// vaultBucket holds all vault records of the bolt backend.
var vaultBucket = []byte("vault")

// boltStore keeps records as keys of a single bbolt bucket.
type boltStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltStore opens (or creates) the bbolt database at path and makes sure
// the vault bucket exists. The file is locked for the lifetime of the store.
func NewBoltStore(path string, log *logger.Logger) (KeyValueStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create vault directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltStore").Msg("failed to open bolt database")
		return nil, fmt.Errorf("failed to open vault database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(vaultBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create vault bucket: %w", err)
	}

	return &boltStore{db: db, logger: log}, nil
}

func (b *boltStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	var value string
	err := b.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(vaultBucket).Get([]byte(key))
		if raw == nil {
			return ErrRecordNotFound
		}
		// raw is only valid inside the transaction
		value = string(raw)
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

func (b *boltStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(vaultBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		b.logger.Err(err).Str("func", "boltStore.Set").Str("key", key).Msg("failed to put record")
		return fmt.Errorf("failed to store record: %w", err)
	}

	return nil
}

func (b *boltStore) Remove(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(vaultBucket).Delete([]byte(key))
	})
	if err != nil {
		b.logger.Err(err).Str("func", "boltStore.Remove").Str("key", key).Msg("failed to delete record")
		return fmt.Errorf("failed to remove record: %w", err)
	}

	return nil
}

func (b *boltStore) Close() error {
	return b.db.Close()
}
