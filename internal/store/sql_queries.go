package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	recordsTable = "vault_records"

	upsertRecordSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP"
)

// psql builds sqlite statements with "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSelectRecordQuery builds:
//
//	SELECT value FROM vault_records WHERE key = ?
func buildSelectRecordQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(recordsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildUpsertRecordQuery builds an INSERT that replaces the value of an
// existing key.
func buildUpsertRecordQuery(key, value string) (string, []any, error) {
	return psql.
		Insert(recordsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix(upsertRecordSuffix).
		ToSql()
}

// buildDeleteRecordQuery builds:
//
//	DELETE FROM vault_records WHERE key = ?
func buildDeleteRecordQuery(key string) (string, []any, error) {
	return psql.
		Delete(recordsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
