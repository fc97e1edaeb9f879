package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
)

// fileStore keeps all records in one JSON document. Every write replaces the
// document atomically: the new content goes to a temp file in the same
// directory which is then renamed over the old one.
type fileStore struct {
	path   string
	logger *logger.Logger

	mu      sync.RWMutex
	records map[string]string
	closed  bool
}

type filePersistedState struct {
	Records map[string]string `json:"records"`
}

// NewFileStore opens (or lazily creates) the JSON record file at path.
func NewFileStore(path string, log *logger.Logger) (KeyValueStore, error) {
	s := &fileStore{
		path:    path,
		logger:  log,
		records: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// RecoverFileStore moves the unreadable document at path aside and opens an
// empty store in its place. It returns the store and the new location of the
// old document.
func RecoverFileStore(path string, log *logger.Logger) (KeyValueStore, string, error) {
	moved := fmt.Sprintf("%s.corrupt-%s", path, time.Now().UTC().Format("20060102T150405.000000000Z"))
	if err := os.Rename(path, moved); err != nil {
		return nil, "", fmt.Errorf("move unreadable storage file: %w", err)
	}
	log.Warn().Str("func", "RecoverFileStore").Str("moved_to", moved).
		Msg("storage file is unreadable, starting with an empty vault")

	s, err := NewFileStore(path, log)
	if err != nil {
		return nil, moved, err
	}
	return s, moved, nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode local storage file: %v", ErrCorruptedFile, err)
	}
	if st.Records != nil {
		s.records = st.Records
	}

	return nil
}

// persist writes records to disk. The caller holds s.mu.
func (s *fileStore) persist(records map[string]string) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Records: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if err = tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("chmod temp storage file: %w", err)
	}
	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp storage file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp storage file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		cleanup()
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}

func (s *fileStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", ErrStoreClosed
	}
	value, ok := s.records[key]
	if !ok {
		return "", ErrRecordNotFound
	}
	return value, nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	next := s.copyRecords()
	next[key] = value
	if err := s.persist(next); err != nil {
		s.logger.Err(err).
			Str("func", "fileStore.Set").
			Str("key", key).
			Msg("failed to persist record")
		return err
	}
	s.records = next
	return nil
}

func (s *fileStore) Remove(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if _, ok := s.records[key]; !ok {
		return nil
	}

	next := s.copyRecords()
	delete(next, key)
	if err := s.persist(next); err != nil {
		s.logger.Err(err).
			Str("func", "fileStore.Remove").
			Str("key", key).
			Msg("failed to persist record removal")
		return err
	}
	s.records = next
	return nil
}

func (s *fileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *fileStore) copyRecords() map[string]string {
	next := make(map[string]string, len(s.records)+1)
	for k, v := range s.records {
		next[k] = v
	}
	return next
}
