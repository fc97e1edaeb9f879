package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
)

// Sentinel errors returned by [KeyValueStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned by Get when no value is stored under
	// the requested key.
	ErrRecordNotFound = errors.New("record not found")

	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("empty record key")

	// ErrUnknownBackend is returned by [NewKeyValueStore] for a backend name
	// it does not know.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrStoreClosed is returned by operations on a closed store.
	ErrStoreClosed = errors.New("store is closed")

	// ErrCorruptedFile is returned by [NewFileStore] when the document
	// exists but cannot be decoded. See [RecoverFileStore].
	ErrCorruptedFile = fmt.Errorf("%w: unreadable storage file", app.ErrStorageCorruption)
)

// Low-level database operation errors of the sqlite backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a record value fails.
	ErrScanningRow = errors.New("failed to scan record row")
)
