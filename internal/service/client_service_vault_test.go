package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/mock"
	"github.com/MKhiriev/go-otp-keeper/internal/otpauth"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testVault struct {
	VaultService
	gate     MasterPasswordGate
	accounts *accountStore
	kv       store.KeyValueStore
}

func newTestVault(t *testing.T) *testVault {
	t.Helper()

	kv := store.NewMemoryStore()
	gate := NewMasterPasswordGate(kv, config.ClientAuth{}, logger.Nop())
	accounts := newTestAccountStore(t, kv, fastCipher())

	return &testVault{
		VaultService: NewVaultService(gate, accounts, otpauth.NewParser(), logger.Nop()),
		gate:         gate,
		accounts:     accounts,
		kv:           kv,
	}
}

func newMockedVault(t *testing.T, ctrl *gomock.Controller) (VaultService, *mock.MockMasterPasswordGate, *mock.MockAccountStore) {
	t.Helper()

	gate := mock.NewMockMasterPasswordGate(ctrl)
	accounts := mock.NewMockAccountStore(ctrl)
	return NewVaultService(gate, accounts, otpauth.NewParser(), logger.Nop()), gate, accounts
}

const githubURI = "otpauth://totp/GitHub:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=GitHub"

func TestVaultService_Lifecycle(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()

	state, err := v.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GateUninitialized, state)

	require.NoError(t, v.Setup(ctx, "first"))
	state, _ = v.Status(ctx)
	assert.Equal(t, models.GateAuthenticated, state)
	assert.True(t, v.accounts.Unlocked())

	added, err := v.ImportURI(ctx, githubURI)
	require.NoError(t, err)
	assert.Equal(t, "GitHub", added.Issuer)
	assert.Equal(t, "alice@example.com", added.Username)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", added.Secret)

	v.Lock()
	state, _ = v.Status(ctx)
	assert.Equal(t, models.GateLocked, state)
	assert.Empty(t, v.accounts.Accounts())

	err = v.Unlock(ctx, "wrong")
	assert.ErrorIs(t, err, ErrInvalidMasterPassword)
	assert.False(t, v.accounts.Unlocked())

	require.NoError(t, v.Unlock(ctx, "first"))
	assert.Equal(t, []models.Account{added}, v.accounts.Accounts())
}

func TestVaultService_Setup_Errors(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()

	assert.ErrorIs(t, v.Setup(ctx, ""), ErrEmptyPassword)
	require.NoError(t, v.Setup(ctx, "pw"))
	assert.ErrorIs(t, v.Setup(ctx, "pw2"), ErrAlreadyInitialized)
}

func TestVaultService_Unlock_DegradedLoad(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, v.Setup(ctx, "pw"))
	v.Lock()
	require.NoError(t, v.kv.Set(ctx, store.KeyAccounts, "garbage"))

	err := v.Unlock(ctx, "pw")

	require.NoError(t, err)
	assert.True(t, v.accounts.Unlocked())
	assert.Error(t, v.accounts.LoadErr())
	assert.Empty(t, v.accounts.Accounts())
}

func TestVaultService_Unlock_StoreFailureLocksGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, gate, accounts := newMockedVault(t, ctrl)
	ctx := context.Background()
	ioErr := errors.New("read failed")

	gomock.InOrder(
		gate.EXPECT().VerifyMasterPassword(ctx, "pw").Return("pw", nil),
		accounts.EXPECT().Load(ctx, "pw").Return(ioErr),
		gate.EXPECT().Lock(),
	)

	err := v.Unlock(ctx, "pw")
	assert.ErrorIs(t, err, ioErr)
}

func TestVaultService_ChangeMasterPassword(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, v.Setup(ctx, "old"))
	a, err := v.ImportURI(ctx, githubURI)
	require.NoError(t, err)

	require.NoError(t, v.ChangeMasterPassword(ctx, "old", "new"))
	assert.Equal(t, []models.Account{a}, storedAccounts(t, v.kv, "new"))

	v.Lock()
	assert.ErrorIs(t, v.Unlock(ctx, "old"), ErrInvalidMasterPassword)
	require.NoError(t, v.Unlock(ctx, "new"))
	assert.Equal(t, []models.Account{a}, v.accounts.Accounts())
}

func TestVaultService_ChangeMasterPassword_CancelledDuringWrite(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv := &hookStore{KeyValueStore: store.NewMemoryStore()}
	gate := NewMasterPasswordGate(kv, config.ClientAuth{}, logger.Nop())
	accounts := newTestAccountStore(t, kv, fastCipher())
	v := NewVaultService(gate, accounts, otpauth.NewParser(), logger.Nop())

	require.NoError(t, v.Setup(ctx, "old-pass"))
	a, err := v.ImportURI(ctx, githubURI)
	require.NoError(t, err)

	kv.onSet = func(key string) {
		if key == store.KeyAccounts {
			cancel()
		}
	}

	require.NoError(t, v.ChangeMasterPassword(ctx, "old-pass", "new-pass"))
	assert.Equal(t, []models.Account{a}, storedAccounts(t, kv, "new-pass"))

	kv.onSet = nil
	v.Lock()
	assert.ErrorIs(t, v.Unlock(context.Background(), "old-pass"), ErrInvalidMasterPassword)
	require.NoError(t, v.Unlock(context.Background(), "new-pass"))
	assert.NoError(t, accounts.LoadErr())
	assert.Equal(t, []models.Account{a}, accounts.Accounts())
}

func TestVaultService_ChangeMasterPassword_WrongOld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, gate, _ := newMockedVault(t, ctrl)
	ctx := context.Background()

	gate.EXPECT().VerifyMasterPassword(ctx, "bad").Return("", ErrInvalidMasterPassword)

	err := v.ChangeMasterPassword(ctx, "bad", "new")
	assert.ErrorIs(t, err, ErrInvalidMasterPassword)
}

func TestVaultService_ChangeMasterPassword_EmptyNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, _, _ := newMockedVault(t, ctrl)

	err := v.ChangeMasterPassword(context.Background(), "old", "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVaultService_ChangeMasterPassword_RollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, gate, accounts := newMockedVault(t, ctrl)
	ctx := context.Background()
	writeErr := errors.New("verifier write failed")

	gomock.InOrder(
		gate.EXPECT().VerifyMasterPassword(ctx, "old").Return("old", nil),
		accounts.EXPECT().Rekey(gomock.Any(), "new").Return(nil),
		gate.EXPECT().ReplaceVerifier(gomock.Any(), "new").Return(writeErr),
		accounts.EXPECT().Rekey(gomock.Any(), "old").Return(nil),
	)

	err := v.ChangeMasterPassword(ctx, "old", "new")
	assert.ErrorIs(t, err, writeErr)
}

func TestVaultService_ChangeMasterPassword_RollbackFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, gate, accounts := newMockedVault(t, ctrl)
	ctx := context.Background()
	writeErr := errors.New("verifier write failed")
	rbErr := errors.New("rekey failed")

	gate.EXPECT().VerifyMasterPassword(ctx, "old").Return("old", nil)
	accounts.EXPECT().Rekey(gomock.Any(), "new").Return(nil)
	gate.EXPECT().ReplaceVerifier(gomock.Any(), "new").Return(writeErr)
	accounts.EXPECT().Rekey(gomock.Any(), "old").Return(rbErr)

	err := v.ChangeMasterPassword(ctx, "old", "new")
	assert.ErrorIs(t, err, writeErr)
	assert.ErrorIs(t, err, rbErr)
}

func TestVaultService_ChangeMasterPassword_RekeyFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, gate, accounts := newMockedVault(t, ctrl)
	ctx := context.Background()
	rekeyErr := errors.New("disk full")

	gate.EXPECT().VerifyMasterPassword(ctx, "old").Return("old", nil)
	accounts.EXPECT().Rekey(gomock.Any(), "new").Return(rekeyErr)

	err := v.ChangeMasterPassword(ctx, "old", "new")
	assert.ErrorIs(t, err, rekeyErr)
}

func TestVaultService_Reset(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, v.Setup(ctx, "pw"))
	_, err := v.ImportURI(ctx, githubURI)
	require.NoError(t, err)

	require.NoError(t, v.Reset(ctx))

	state, err := v.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GateUninitialized, state)
	assert.False(t, v.accounts.Unlocked())

	_, err = v.kv.Get(ctx, store.KeyAccounts)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	// a fresh vault can be created afterwards
	require.NoError(t, v.Setup(ctx, "other"))
	assert.Empty(t, v.accounts.Accounts())
}

func TestVaultService_ImportURI_Rejected(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()
	require.NoError(t, v.Setup(ctx, "pw"))

	_, err := v.ImportURI(ctx, "otpauth-migration://offline?data=abc")
	assert.ErrorIs(t, err, app.ErrUnsupportedFormat)

	_, err = v.ImportURI(ctx, "otpauth://totp/X:y?secret=not-base32!")
	assert.ErrorIs(t, err, app.ErrValidation)

	assert.Empty(t, v.accounts.Accounts())
}

func TestVaultService_ImportFile(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()
	require.NoError(t, v.Setup(ctx, "pw"))

	doc := `{"version":1,"entries":[
		{"content":{"name":"alice","uri":"otpauth://totp/GitHub:alice?secret=JBSWY3DPEHPK3PXP&issuer=GitHub"}},
		{"content":{"name":"bob","uri":"otpauth://totp/bob?secret=mfrgg"}}
	]}`

	added, err := v.ImportFile(ctx, strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Equal(t, "GitHub", added[0].Issuer)
	assert.Equal(t, "alice", added[0].Username)
	assert.Equal(t, "bob", added[1].Username)
	assert.Equal(t, "MFRGG", added[1].Secret)
	assert.Equal(t, added, v.accounts.Accounts())
}

func TestVaultService_ImportFile_Rejected(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()
	require.NoError(t, v.Setup(ctx, "pw"))

	_, err := v.ImportFile(ctx, strings.NewReader(`{"version":2,"entries":[]}`))
	assert.ErrorIs(t, err, otpauth.ErrUnsupportedImportFile)

	_, err = v.ImportFile(ctx, strings.NewReader(`{"version":1,"entries":[
		{"content":{"name":"ok","uri":"otpauth://totp/ok?secret=MFRGG"}},
		{"content":{"name":"bad","uri":"otpauth://totp/bad?secret=1"}}
	]}`))
	assert.ErrorIs(t, err, app.ErrValidation)

	assert.Empty(t, v.accounts.Accounts(), "no partial import")
}

func TestVaultService_ExportQRCode(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "qr.png")

	assert.ErrorIs(t, v.ExportQRCode(ctx, "id-1", 128, path), ErrVaultLocked)

	require.NoError(t, v.Setup(ctx, "pw"))
	a, err := v.ImportURI(ctx, githubURI)
	require.NoError(t, err)

	assert.ErrorIs(t, v.ExportQRCode(ctx, "missing", 128, path), ErrAccountNotFound)

	require.NoError(t, v.ExportQRCode(ctx, a.ID, 128, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
