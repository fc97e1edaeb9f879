// Package tui is the terminal interface of the vault, built on Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/otp"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNilServices = errors.New("client services are not set")

type TUI struct {
	services  *service.ClientServices
	totp      config.ClientTOTP
	buildInfo models.AppBuildInfo
	log       *logger.Logger

	notice string
}

func New(services *service.ClientServices, cfg config.ClientTOTP, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNilServices
	}
	return &TUI{services: services, totp: cfg, buildInfo: buildInfo, log: log}, nil
}

// Notify sets a message shown once on the next setup screen.
func (t *TUI) Notify(msg string) {
	t.notice = msg
}

// UnlockFlow shows the setup or the unlock screen until the vault is open.
// It returns ErrUserQuit when the user leaves instead.
func (t *TUI) UnlockFlow(ctx context.Context) error {
	state, err := t.services.Vault.Status(ctx)
	if err != nil {
		return fmt.Errorf("read vault status: %w", err)
	}
	if state == models.GateAuthenticated {
		return nil
	}

	pages, start := t.unlockPages(ctx, state)
	root := NewRootModel(pages, start, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.unlocked {
		return ErrUserQuit
	}
	return nil
}

// unlockPages builds the unlock flow pages and picks the first one for state.
// A pending notice is handed to the setup page.
func (t *TUI) unlockPages(ctx context.Context, state models.GateState) (map[string]tea.Model, string) {
	setup := NewSetupModel(ctx, t.services.Vault)
	setup.form.notice, t.notice = t.notice, ""

	pages := map[string]tea.Model{
		pageSetup:  setup,
		pageVerify: NewVerifyModel(ctx, t.services.Vault),
	}
	if state == models.GateUninitialized {
		return pages, pageSetup
	}
	return pages, pageVerify
}

// MainLoop shows the account list of an unlocked vault. lock reports whether
// the user asked to lock the vault rather than quit.
func (t *TUI) MainLoop(ctx context.Context) (lock bool, err error) {
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sessions := otp.NewSessions(t.services.Engine, t.totp.TickInterval, nil)
	defer sessions.StopAll()

	model := newMainLoopModel(loopCtx, t.services.Vault, t.services.Accounts, sessions, t.buildInfo, t.log)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(*mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.lock, nil
}
