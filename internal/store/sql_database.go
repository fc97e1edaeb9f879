package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/migrations"
)

const (
	// execAttempts bounds how often a retryable statement is run.
	execAttempts = 3
	// execRetryDelay grows linearly with every retry.
	execRetryDelay = 50 * time.Millisecond
)

// DB wraps a database connection together with the error classifier and the
// logger used by the stores built on it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execWithRetry runs a statement and repeats it while the classifier reports
// the failure as retryable. Without a classifier the statement runs once.
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	for attempt := 1; ; attempt++ {
		res, err := db.ExecContext(ctx, query, args...)
		if err == nil || attempt == execAttempts || db.errorClassificator == nil ||
			db.errorClassificator.Classify(err) != Retryable {
			return res, err
		}

		db.logger.Warn().Err(err).
			Str("func", "*DB.execWithRetry").
			Int("attempt", attempt).
			Msg("database is busy, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * execRetryDelay):
		}
	}
}
