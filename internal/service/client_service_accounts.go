package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-otp-keeper/internal/crypto"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/otp"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/validators"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// mutationQueue runs jobs one at a time. *workers.Queue implements it.
type mutationQueue interface {
	Do(ctx context.Context, fn func(context.Context) error) error
}

// idGenerator issues account IDs. *utils.UUIDGenerator implements it.
type idGenerator interface {
	Generate() string
}

type accountStore struct {
	store     store.KeyValueStore
	cipher    crypto.VaultCipher
	validator validators.Validator
	queue     mutationQueue
	ids       idGenerator
	logger    *logger.Logger

	// commitMu orders store writes against Lock. Readers only take mu, so
	// they never wait for a write to reach the disk.
	commitMu sync.Mutex

	mu         sync.RWMutex
	key        string
	unlocked   bool
	accounts   []models.Account
	generation uint64
	loadErr    error
}

// NewAccountStore creates a locked AccountStore. Mutations are executed
// through queue, which must be running.
func NewAccountStore(
	kv store.KeyValueStore,
	cipher crypto.VaultCipher,
	validator validators.Validator,
	queue mutationQueue,
	ids idGenerator,
	log *logger.Logger,
) AccountStore {
	return &accountStore{
		store:     kv,
		cipher:    cipher,
		validator: validator,
		queue:     queue,
		ids:       ids,
		logger:    log,
	}
}

func (s *accountStore) Load(ctx context.Context, key string) error {
	return s.queue.Do(ctx, func(ctx context.Context) error {
		accounts, cause, err := s.read(ctx, key)
		if err != nil {
			return err
		}

		s.mu.Lock()
		s.key = key
		s.unlocked = true
		s.accounts = accounts
		s.loadErr = cause
		s.generation++
		s.mu.Unlock()

		if cause != nil {
			s.logger.Warn().Err(cause).Str("func", "*accountStore.Load").
				Msg("stored accounts are unreadable, starting with an empty list")
			return fmt.Errorf("%w: %v", ErrCorruptedAccounts, cause)
		}

		s.logger.Debug().Str("func", "*accountStore.Load").Int("accounts", len(accounts)).Msg("accounts loaded")
		return nil
	})
}

// read returns the decrypted accounts. A record that exists but cannot be
// opened yields an empty list and the cause; err is set only when the store
// itself failed.
func (s *accountStore) read(ctx context.Context, key string) (accounts []models.Account, cause error, err error) {
	raw, err := s.store.Get(ctx, store.KeyAccounts)
	if errors.Is(err, store.ErrRecordNotFound) {
		return []models.Account{}, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read accounts: %w", err)
	}

	var blob models.EncryptedBlob
	if err = json.Unmarshal([]byte(raw), &blob); err != nil {
		return []models.Account{}, fmt.Errorf("decode blob: %w", err), nil
	}

	plaintext, err := s.cipher.Decrypt(blob, key)
	if err != nil {
		return []models.Account{}, err, nil
	}

	if err = json.Unmarshal(plaintext, &accounts); err != nil {
		return []models.Account{}, fmt.Errorf("decode accounts: %w", err), nil
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil, nil
}

func (s *accountStore) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadErr
}

func (s *accountStore) Unlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.unlocked
}

func (s *accountStore) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.accounts)
}

func (s *accountStore) Get(id string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := lo.Find(s.accounts, func(a models.Account) bool { return a.ID == id })
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return a, nil
}

func (s *accountStore) Search(term string) []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(s.accounts)
	}

	return lo.Filter(s.accounts, func(a models.Account, _ int) bool {
		return strings.Contains(strings.ToLower(a.Issuer), term) ||
			strings.Contains(strings.ToLower(a.Username), term)
	})
}

func (s *accountStore) Add(ctx context.Context, in models.NewAccount) (models.Account, error) {
	in, err := s.prepare(ctx, in)
	if err != nil {
		return models.Account{}, err
	}

	var added models.Account
	err = s.mutate(ctx, func(current []models.Account) ([]models.Account, error) {
		added = s.newAccount(in)
		return append(current, added), nil
	})
	if err != nil {
		return models.Account{}, err
	}
	return added, nil
}

func (s *accountStore) AddMany(ctx context.Context, in []models.NewAccount) ([]models.Account, error) {
	prepared := make([]models.NewAccount, 0, len(in))
	for i, a := range in {
		p, err := s.prepare(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		prepared = append(prepared, p)
	}
	if len(prepared) == 0 {
		return []models.Account{}, nil
	}

	var added []models.Account
	err := s.mutate(ctx, func(current []models.Account) ([]models.Account, error) {
		added = lo.Map(prepared, func(a models.NewAccount, _ int) models.Account {
			return s.newAccount(a)
		})
		return append(current, added...), nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (s *accountStore) Update(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error) {
	if update.Issuer != nil {
		update.Issuer = lo.ToPtr(strings.TrimSpace(*update.Issuer))
	}
	if update.Username != nil {
		update.Username = lo.ToPtr(strings.TrimSpace(*update.Username))
	}
	if update.Favicon != nil {
		update.Favicon = lo.ToPtr(strings.TrimSpace(*update.Favicon))
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Account{}, err
	}

	var updated models.Account
	err := s.mutate(ctx, func(current []models.Account) ([]models.Account, error) {
		_, i, ok := lo.FindIndexOf(current, func(a models.Account) bool { return a.ID == id })
		if !ok {
			return nil, ErrAccountNotFound
		}
		updated = update.Apply(current[i])
		current[i] = updated
		return current, nil
	})
	if err != nil {
		return models.Account{}, err
	}
	return updated, nil
}

func (s *accountStore) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, func(current []models.Account) ([]models.Account, error) {
		_, i, ok := lo.FindIndexOf(current, func(a models.Account) bool { return a.ID == id })
		if !ok {
			return nil, ErrAccountNotFound
		}
		return slices.Delete(current, i, i+1), nil
	})
}

func (s *accountStore) Rekey(ctx context.Context, newKey string) error {
	if newKey == "" {
		return ErrEmptyPassword
	}

	return s.queue.Do(ctx, func(ctx context.Context) error {
		s.mu.RLock()
		unlocked, generation, current := s.unlocked, s.generation, slices.Clone(s.accounts)
		s.mu.RUnlock()

		if !unlocked {
			return ErrVaultLocked
		}

		value, err := s.seal(current, newKey)
		if err != nil {
			return err
		}

		err = s.commit(ctx, generation, value, func() {
			s.key = newKey
			s.loadErr = nil
			s.generation++
		})
		if err != nil {
			return err
		}

		s.logger.Info().Str("func", "*accountStore.Rekey").Msg("accounts re-encrypted")
		return nil
	})
}

func (s *accountStore) Lock() {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.key = ""
	s.unlocked = false
	s.accounts = nil
	s.loadErr = nil
	s.generation++
}

// mutate runs change on a copy of the list inside the queue, writes the
// encrypted result and only then publishes it. The result is discarded when
// the store was locked or re-keyed while change ran.
func (s *accountStore) mutate(ctx context.Context, change func([]models.Account) ([]models.Account, error)) error {
	return s.queue.Do(ctx, func(ctx context.Context) error {
		s.mu.RLock()
		unlocked, key, generation, current := s.unlocked, s.key, s.generation, slices.Clone(s.accounts)
		s.mu.RUnlock()

		if !unlocked {
			return ErrVaultLocked
		}

		next, err := change(current)
		if err != nil {
			return err
		}

		value, err := s.seal(next, key)
		if err != nil {
			return err
		}

		err = s.commit(ctx, generation, value, func() {
			s.accounts = next
			s.loadErr = nil
		})
		if err != nil && !errors.Is(err, ErrVaultLocked) {
			s.logger.Err(err).Str("func", "*accountStore.mutate").Msg("failed to write accounts")
		}
		return err
	})
}

// commit writes value and runs publish under the write lock. Nothing is
// written when the store was locked or re-keyed since generation was read.
func (s *accountStore) commit(ctx context.Context, generation uint64, value string, publish func()) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.RLock()
	stale := s.generation != generation
	s.mu.RUnlock()
	if stale {
		return ErrVaultLocked
	}

	if err := s.store.Set(ctx, store.KeyAccounts, value); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}

	s.mu.Lock()
	publish()
	s.mu.Unlock()
	return nil
}

// seal encrypts accounts under key and encodes the blob for storage.
func (s *accountStore) seal(accounts []models.Account, key string) (string, error) {
	if accounts == nil {
		accounts = []models.Account{}
	}

	plaintext, err := json.Marshal(accounts)
	if err != nil {
		return "", fmt.Errorf("encode accounts: %w", err)
	}

	blob, err := s.cipher.Encrypt(plaintext, key)
	if err != nil {
		return "", fmt.Errorf("encrypt accounts: %w", err)
	}

	value, err := json.Marshal(blob)
	if err != nil {
		return "", fmt.Errorf("encode blob: %w", err)
	}
	return string(value), nil
}

// prepare normalizes user input and validates it.
func (s *accountStore) prepare(ctx context.Context, in models.NewAccount) (models.NewAccount, error) {
	in.Issuer = strings.TrimSpace(in.Issuer)
	in.Username = strings.TrimSpace(in.Username)
	in.Favicon = strings.TrimSpace(in.Favicon)
	in.Secret = otp.NormalizeSecret(in.Secret)

	if err := otp.ValidateSecret(in.Secret); err != nil {
		return in, err
	}
	if err := s.validator.Validate(ctx, in); err != nil {
		return in, err
	}
	return in, nil
}

func (s *accountStore) newAccount(in models.NewAccount) models.Account {
	return models.Account{
		ID:       s.ids.Generate(),
		Issuer:   in.Issuer,
		Username: in.Username,
		Secret:   in.Secret,
		Favicon:  in.Favicon,
	}
}
