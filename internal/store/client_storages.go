package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
)

// NewKeyValueStore builds the backend named by cfg.Backend:
//   - "memory": records live only as long as the process;
//   - "file": one JSON document at cfg.Path, replaced atomically;
//   - "sqlite": a vault_records table in the database at cfg.Path, created
//     by the embedded migrations;
//   - "bolt": the "vault" bucket of the bbolt file at cfg.Path.
func NewKeyValueStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (KeyValueStore, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating vault store...")

	switch strings.ToLower(cfg.Backend) {
	case config.BackendMemory:
		return NewMemoryStore(), nil

	case config.BackendFile:
		return NewFileStore(cfg.Path, log)

	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteStore(db, log), nil

	case config.BackendBolt:
		return NewBoltStore(cfg.Path, log)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
