// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
)

// sqliteStore keeps each record as a row of the vault_records table.
type sqliteStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteStore builds a [KeyValueStore] on an open and migrated [DB].
func NewSQLiteStore(db *DB, log *logger.Logger) KeyValueStore {
	return &sqliteStore{db: db, logger: log}
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	query, args, err := buildSelectRecordQuery(key)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStore.Get").Msg("failed to build select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrRecordNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStore.Get").
			Str("key", key).
			Msg("failed to read record")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildUpsertRecordQuery(key, value)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStore.Set").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.execWithRetry(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStore.Set").
			Str("key", key).
			Msg("failed to execute upsert for record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildDeleteRecordQuery(key)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStore.Remove").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.execWithRetry(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStore.Remove").
			Str("key", key).
			Msg("failed to execute delete for record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
