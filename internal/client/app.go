package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/internal/tui"
	"github.com/MKhiriev/go-otp-keeper/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and a ui")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(services.Queue),
		log:      log,
	}, nil
}

// Run alternates between the unlock flow and the main screen until the user
// quits. Locking from the main screen drops the vault key and goes back to
// the unlock flow.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run()
	defer a.workers.Stop()

	for {
		if ctx.Err() != nil {
			a.services.Vault.Lock()
			return nil
		}

		if err := a.ui.UnlockFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				a.log.Info().Str("func", "*App.Run").Msg("user quit before unlocking")
				return nil
			}
			return fmt.Errorf("unlock flow: %w", err)
		}
		a.log.Info().Str("func", "*App.Run").Msg("vault unlocked")

		lock, err := a.ui.MainLoop(ctx)
		a.services.Vault.Lock()
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !lock {
			a.log.Info().Str("func", "*App.Run").Msg("user quit")
			return nil
		}
		a.log.Info().Str("func", "*App.Run").Msg("vault locked by user")
	}
}
