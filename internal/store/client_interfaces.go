package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/key_value_store_mock.go -package=mock

// Record keys used by the vault.
const (
	// KeyMasterPassword holds the 64-hex SHA-256 verifier of the master
	// password.
	KeyMasterPassword = "masterPassword"

	// KeyAccounts holds the JSON-encoded encrypted blob of the account list.
	KeyAccounts = "accounts"
)

// KeyValueStore is the persistence seam of the vault: a flat string map.
// Values are opaque to the store; encryption happens above it.
type KeyValueStore interface {
	// Get returns the value stored under key or ErrRecordNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set creates or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}
