package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-otp-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// MasterPasswordGate decides whether the vault may be opened. It stores a
// SHA-256 verifier of the master password and hands the password back as
// the vault key after a successful check.
type MasterPasswordGate interface {
	// State reports Uninitialized when no verifier is stored, Authenticated
	// after a successful set or verify, and Locked otherwise.
	State(ctx context.Context) (models.GateState, error)

	// SetMasterPassword stores the verifier of password on first run and
	// returns the vault key. It fails with ErrEmptyPassword or
	// ErrAlreadyInitialized.
	SetMasterPassword(ctx context.Context, password string) (key string, err error)

	// VerifyMasterPassword checks password against the stored verifier and
	// returns the vault key. A wrong password and a missing verifier both
	// yield ErrInvalidMasterPassword.
	VerifyMasterPassword(ctx context.Context, password string) (key string, err error)

	// ReplaceVerifier overwrites the stored verifier. Only the change
	// password flow calls it, after the accounts were re-encrypted.
	ReplaceVerifier(ctx context.Context, password string) error

	// Reset removes the verifier and the encrypted accounts.
	Reset(ctx context.Context) error

	// Lock forgets the authentication.
	Lock()
}

// AccountStore holds the decrypted account list of an unlocked vault and
// persists every change by re-encrypting the whole list.
//
// Mutations run one at a time. Each one works on a copy of the list and the
// in-memory state only changes after the encrypted record was written, so a
// failed mutation leaves both the memory and the store as they were.
type AccountStore interface {
	// Load decrypts the stored accounts with key and unlocks the store. An
	// unreadable record leaves an empty list; the cause is kept in LoadErr
	// and returned wrapped in ErrCorruptedAccounts while the store stays
	// usable.
	Load(ctx context.Context, key string) error

	// LoadErr returns the cause of a degraded Load, or nil.
	LoadErr() error

	// Unlocked reports whether a key is held.
	Unlocked() bool

	// Accounts returns a copy of the list in insertion order.
	Accounts() []models.Account

	// Get returns one account or ErrAccountNotFound.
	Get(id string) (models.Account, error)

	// Search returns the accounts whose issuer or username contains term,
	// ignoring case. An empty term matches everything.
	Search(term string) []models.Account

	Add(ctx context.Context, account models.NewAccount) (models.Account, error)

	// AddMany adds all accounts with a single write. One invalid account
	// rejects the whole batch.
	AddMany(ctx context.Context, accounts []models.NewAccount) ([]models.Account, error)

	Update(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error)
	Delete(ctx context.Context, id string) error

	// Rekey re-encrypts the list under newKey.
	Rekey(ctx context.Context, newKey string) error

	// Lock drops the key and the decrypted list.
	Lock()
}

// VaultService combines the gate and the account store into the operations
// offered by the user interface.
type VaultService interface {
	Status(ctx context.Context) (models.GateState, error)
	Setup(ctx context.Context, password string) error
	Unlock(ctx context.Context, password string) error
	Lock()

	// ChangeMasterPassword re-encrypts the accounts under newPassword and
	// replaces the verifier. If the verifier cannot be written the accounts
	// are re-encrypted back under oldPassword.
	ChangeMasterPassword(ctx context.Context, oldPassword, newPassword string) error

	// Reset wipes the vault and returns it to the uninitialized state.
	Reset(ctx context.Context) error

	// ImportURI parses an otpauth URI and adds the account it describes.
	ImportURI(ctx context.Context, raw string) (models.Account, error)

	// ImportFile reads a bulk-import document and adds all of its accounts,
	// or none of them.
	ImportFile(ctx context.Context, r io.Reader) ([]models.Account, error)

	// ExportQRCode writes the QR code of an account as a PNG file.
	ExportQRCode(ctx context.Context, id string, size int, path string) error
}
