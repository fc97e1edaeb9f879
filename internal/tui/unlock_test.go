package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/mock"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func TestSetupModel_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)

	tests := []struct {
		name     string
		password string
		confirm  string
		want     string
	}{
		{name: "empty", password: "", confirm: "", want: app.MsgEmptyMasterPassword},
		{name: "mismatch", password: "one", confirm: "two", want: app.MsgPasswordsDoNotMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSetupModel(context.Background(), vault)
			m.form.inputs[0].SetValue(tt.password)
			m.form.inputs[1].SetValue(tt.confirm)

			_, _ = m.Update(keyTab)
			_, cmd := m.Update(keyEnter)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, m.form.errMsg)
			assert.False(t, m.submitting)
		})
	}
}

func TestSetupModel_EnterMovesToConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewSetupModel(context.Background(), mock.NewMockVaultService(ctrl))

	_, _ = m.Update(keyEnter)

	assert.Equal(t, 1, m.form.focus)
	assert.Empty(t, m.form.errMsg)
}

func TestSetupModel_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().Setup(gomock.Any(), "hunter2").Return(nil)

	m := NewSetupModel(context.Background(), vault)
	m.form.inputs[0].SetValue("hunter2")
	m.form.inputs[1].SetValue("hunter2")
	_, _ = m.Update(keyTab)

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	done := cmd()
	assert.Equal(t, setupDoneMsg{}, done)

	_, cmd = m.Update(done)
	require.NotNil(t, cmd)
	assert.Equal(t, unlockedMsg{}, cmd())
}

func TestSetupModel_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewSetupModel(context.Background(), mock.NewMockVaultService(ctrl))

	_, cmd := m.Update(setupDoneMsg{err: service.ErrAlreadyInitialized})

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgInvalidInput, m.form.errMsg)
}

func TestVerifyModel_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().Unlock(gomock.Any(), "wrong").Return(service.ErrInvalidMasterPassword)

	m := NewVerifyModel(context.Background(), vault)
	m.input.SetValue("wrong")

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)

	_, cmd = m.Update(cmd())
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgInvalidMasterPassword, m.errMsg)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), app.MsgInvalidMasterPassword)
}

func TestVerifyModel_Throttled(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewVerifyModel(context.Background(), mock.NewMockVaultService(ctrl))

	_, _ = m.Update(verifyDoneMsg{err: service.ErrTooManyAttempts})

	assert.Equal(t, app.MsgTooManyAttempts, m.errMsg)
}

func TestVerifyModel_Unlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().Unlock(gomock.Any(), "right").Return(nil)

	m := NewVerifyModel(context.Background(), vault)
	m.input.SetValue("right")

	_, cmd := m.Update(keyEnter)
	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, unlockedMsg{}, cmd())
}

func TestVerifyModel_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().Reset(gomock.Any()).Return(nil)

	m := NewVerifyModel(context.Background(), vault)

	_, cmd := m.Update(keyCtrlR)
	assert.Nil(t, cmd)
	assert.True(t, m.confirmReset)
	assert.Contains(t, m.View(), "Reset the vault?")

	_, cmd = m.Update(keyRunes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.confirmReset)

	_, _ = m.Update(keyCtrlR)
	_, cmd = m.Update(keyRunes("y"))
	require.NotNil(t, cmd)

	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageSetup}, cmd())
}

func TestRootModel_Flow(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	ctx := context.Background()

	root := NewRootModel(map[string]tea.Model{
		pageSetup:  NewSetupModel(ctx, vault),
		pageVerify: NewVerifyModel(ctx, vault),
	}, pageVerify, models.NewAppBuildInfo("v1.2.3", "2026-10-19", "abc123"))

	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyF1})
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "v1.2.3")

	updated, _ = root.Update(keyEsc)
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "UNLOCK VAULT")

	updated, _ = root.Update(NavigateTo{Page: pageSetup})
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "CREATE MASTER PASSWORD")

	updated, _ = root.Update(NavigateTo{Page: "missing"})
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "CREATE MASTER PASSWORD")

	updated, cmd := root.Update(unlockedMsg{})
	root = updated.(RootModel)
	assert.True(t, root.unlocked)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_Quit(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{}, pageVerify, models.AppBuildInfo{})

	updated, cmd := root.Update(keyCtrlC)

	assert.True(t, updated.(RootModel).quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestTUI_UnlockPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)

	ui, err := New(&service.ClientServices{Vault: vault}, config.ClientTOTP{}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	pages, start := ui.unlockPages(context.Background(), models.GateLocked)
	assert.Equal(t, pageVerify, start)
	assert.Contains(t, pages, pageSetup)

	ui.Notify(app.MsgStorageRecovered)
	pages, start = ui.unlockPages(context.Background(), models.GateUninitialized)
	require.Equal(t, pageSetup, start)

	setup, ok := pages[pageSetup].(*SetupModel)
	require.True(t, ok)
	assert.Equal(t, app.MsgStorageRecovered, setup.form.notice)
	assert.Contains(t, setup.View(), app.MsgStorageRecovered)

	// shown once
	pages, _ = ui.unlockPages(context.Background(), models.GateUninitialized)
	assert.Empty(t, pages[pageSetup].(*SetupModel).form.notice)
}
