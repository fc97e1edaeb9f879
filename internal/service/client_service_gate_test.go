package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/mock"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGate(t *testing.T) (MasterPasswordGate, store.KeyValueStore) {
	t.Helper()
	kv := store.NewMemoryStore()
	return NewMasterPasswordGate(kv, config.ClientAuth{}, logger.Nop()), kv
}

func TestMasterPasswordGate_FirstRun(t *testing.T) {
	gate, kv := newTestGate(t)
	ctx := context.Background()

	state, err := gate.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GateUninitialized, state)

	key, err := gate.SetMasterPassword(ctx, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "correct horse", key)

	state, err = gate.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GateAuthenticated, state)

	stored, err := kv.Get(ctx, store.KeyMasterPassword)
	require.NoError(t, err)
	assert.Equal(t, utils.SHA256Hex("correct horse"), stored)
	assert.Len(t, stored, 64)
}

func TestMasterPasswordGate_SetMasterPassword_Errors(t *testing.T) {
	gate, kv := newTestGate(t)
	ctx := context.Background()

	_, err := gate.SetMasterPassword(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
	assert.ErrorIs(t, err, app.ErrValidation)

	_, err = kv.Get(ctx, store.KeyMasterPassword)
	assert.ErrorIs(t, err, store.ErrRecordNotFound, "empty password must not be stored")

	_, err = gate.SetMasterPassword(ctx, "first")
	require.NoError(t, err)

	_, err = gate.SetMasterPassword(ctx, "second")
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	stored, err := kv.Get(ctx, store.KeyMasterPassword)
	require.NoError(t, err)
	assert.Equal(t, utils.SHA256Hex("first"), stored)
}

func TestMasterPasswordGate_Verify(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	_, err := gate.SetMasterPassword(ctx, "s3cret")
	require.NoError(t, err)
	gate.Lock()

	state, err := gate.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GateLocked, state)

	_, err = gate.VerifyMasterPassword(ctx, "wrong")
	assert.ErrorIs(t, err, ErrInvalidMasterPassword)
	assert.ErrorIs(t, err, app.ErrAuthentication)

	state, _ = gate.State(ctx)
	assert.Equal(t, models.GateLocked, state, "failed verify must not change state")

	key, err := gate.VerifyMasterPassword(ctx, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", key)

	state, _ = gate.State(ctx)
	assert.Equal(t, models.GateAuthenticated, state)
}

func TestMasterPasswordGate_WrongPasswordKeepsStoredState(t *testing.T) {
	gate, kv := newTestGate(t)
	ctx := context.Background()

	_, err := gate.SetMasterPassword(ctx, "abc12345")
	require.NoError(t, err)

	key, err := gate.VerifyMasterPassword(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, "abc12345", key)

	before, err := kv.Get(ctx, store.KeyMasterPassword)
	require.NoError(t, err)

	_, err = gate.VerifyMasterPassword(ctx, "wrong")
	assert.ErrorIs(t, err, ErrInvalidMasterPassword)

	after, err := kv.Get(ctx, store.KeyMasterPassword)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, utils.SHA256Hex("abc12345"), after)

	_, err = kv.Get(ctx, store.KeyAccounts)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	_, err = gate.VerifyMasterPassword(ctx, "abc12345")
	assert.NoError(t, err)
}

func TestMasterPasswordGate_Verify_NoRecordLooksLikeWrongPassword(t *testing.T) {
	gate, _ := newTestGate(t)

	_, errMissing := gate.VerifyMasterPassword(context.Background(), "anything")

	other, _ := newTestGate(t)
	_, err := other.SetMasterPassword(context.Background(), "real")
	require.NoError(t, err)
	_, errWrong := other.VerifyMasterPassword(context.Background(), "anything")

	require.Error(t, errMissing)
	assert.Equal(t, errWrong, errMissing)
	assert.Equal(t, app.UserMessage(errWrong), app.UserMessage(errMissing))
}

func TestMasterPasswordGate_ReplaceVerifier(t *testing.T) {
	gate, kv := newTestGate(t)
	ctx := context.Background()

	err := gate.ReplaceVerifier(ctx, "new")
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = gate.SetMasterPassword(ctx, "old")
	require.NoError(t, err)

	assert.ErrorIs(t, gate.ReplaceVerifier(ctx, ""), ErrEmptyPassword)
	require.NoError(t, gate.ReplaceVerifier(ctx, "new"))

	stored, err := kv.Get(ctx, store.KeyMasterPassword)
	require.NoError(t, err)
	assert.Equal(t, utils.SHA256Hex("new"), stored)
}

func TestMasterPasswordGate_Reset(t *testing.T) {
	gate, kv := newTestGate(t)
	ctx := context.Background()

	_, err := gate.SetMasterPassword(ctx, "pw")
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, store.KeyAccounts, `{"iv":"00","salt":"00","ciphertext":"00"}`))

	require.NoError(t, gate.Reset(ctx))

	_, err = kv.Get(ctx, store.KeyMasterPassword)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
	_, err = kv.Get(ctx, store.KeyAccounts)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	state, err := gate.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GateUninitialized, state)
}

func TestMasterPasswordGate_Throttling(t *testing.T) {
	kv := store.NewMemoryStore()
	gate := NewMasterPasswordGate(kv, config.ClientAuth{AttemptInterval: time.Hour, AttemptBurst: 2}, logger.Nop())
	ctx := context.Background()

	_, err := gate.SetMasterPassword(ctx, "pw")
	require.NoError(t, err)
	gate.Lock()

	_, err = gate.VerifyMasterPassword(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidMasterPassword)
	_, err = gate.VerifyMasterPassword(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidMasterPassword)

	_, err = gate.VerifyMasterPassword(ctx, "pw")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.ErrorIs(t, err, app.ErrAuthentication)

	state, _ := gate.State(ctx)
	assert.Equal(t, models.GateLocked, state)
}

func TestMasterPasswordGate_NoThrottlingByDefault(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	_, err := gate.SetMasterPassword(ctx, "pw")
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		_, err = gate.VerifyMasterPassword(ctx, "bad")
		require.ErrorIs(t, err, ErrInvalidMasterPassword)
	}
	_, err = gate.VerifyMasterPassword(ctx, "pw")
	assert.NoError(t, err)
}

func TestMasterPasswordGate_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mock.NewMockKeyValueStore(ctrl)
	gate := NewMasterPasswordGate(kv, config.ClientAuth{}, logger.Nop())
	ctx := context.Background()
	diskErr := errors.New("disk on fire")

	kv.EXPECT().Get(ctx, store.KeyMasterPassword).Return("", diskErr)
	_, err := gate.State(ctx)
	assert.ErrorIs(t, err, diskErr)

	kv.EXPECT().Get(ctx, store.KeyMasterPassword).Return("", diskErr)
	_, err = gate.VerifyMasterPassword(ctx, "pw")
	assert.ErrorIs(t, err, diskErr)
	assert.NotErrorIs(t, err, app.ErrAuthentication)

	gomock.InOrder(
		kv.EXPECT().Get(ctx, store.KeyMasterPassword).Return("", store.ErrRecordNotFound),
		kv.EXPECT().Set(ctx, store.KeyMasterPassword, utils.SHA256Hex("pw")).Return(diskErr),
	)
	_, err = gate.SetMasterPassword(ctx, "pw")
	assert.ErrorIs(t, err, diskErr)

	kv.EXPECT().Get(ctx, store.KeyMasterPassword).Return("", store.ErrRecordNotFound)
	state, err := gate.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GateUninitialized, state, "failed set must not authenticate")

	kv.EXPECT().Remove(ctx, store.KeyAccounts).Return(nil)
	kv.EXPECT().Remove(ctx, store.KeyMasterPassword).Return(diskErr)
	assert.ErrorIs(t, gate.Reset(ctx), diskErr)
}
