// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/MKhiriev/go-otp-keeper/models"
)

type masterPasswordGate struct {
	store   store.KeyValueStore
	limiter *rate.Limiter
	logger  *logger.Logger

	mu            sync.Mutex
	authenticated bool
}

// NewMasterPasswordGate creates a locked gate over kv. When
// cfg.AttemptInterval is positive, verify attempts are limited by a token
// bucket of cfg.AttemptBurst tokens refilled once per interval.
func NewMasterPasswordGate(kv store.KeyValueStore, cfg config.ClientAuth, log *logger.Logger) MasterPasswordGate {
	g := &masterPasswordGate{store: kv, logger: log}
	if cfg.AttemptInterval > 0 {
		burst := cfg.AttemptBurst
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Every(cfg.AttemptInterval), burst)
	}
	return g
}

func (g *masterPasswordGate) State(ctx context.Context) (models.GateState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	exists, err := g.verifierExists(ctx)
	if err != nil {
		return models.GateLocked, err
	}
	if !exists {
		g.authenticated = false
		return models.GateUninitialized, nil
	}
	if g.authenticated {
		return models.GateAuthenticated, nil
	}
	return models.GateLocked, nil
}

func (g *masterPasswordGate) SetMasterPassword(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	exists, err := g.verifierExists(ctx)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrAlreadyInitialized
	}

	if err = g.store.Set(ctx, store.KeyMasterPassword, utils.SHA256Hex(password)); err != nil {
		g.logger.Err(err).Str("func", "*masterPasswordGate.SetMasterPassword").Msg("failed to store verifier")
		return "", fmt.Errorf("store verifier: %w", err)
	}

	g.authenticated = true
	g.logger.Info().Str("func", "*masterPasswordGate.SetMasterPassword").Msg("master password set")
	return password, nil
}

func (g *masterPasswordGate) VerifyMasterPassword(ctx context.Context, password string) (string, error) {
	if g.limiter != nil && !g.limiter.Allow() {
		g.logger.Warn().Str("func", "*masterPasswordGate.VerifyMasterPassword").Msg("unlock attempt throttled")
		return "", ErrTooManyAttempts
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	stored, err := g.store.Get(ctx, store.KeyMasterPassword)
	if errors.Is(err, store.ErrRecordNotFound) {
		return "", ErrInvalidMasterPassword
	}
	if err != nil {
		return "", fmt.Errorf("read verifier: %w", err)
	}

	if !utils.EqualDigests(utils.SHA256Hex(password), stored) {
		g.logger.Info().Str("func", "*masterPasswordGate.VerifyMasterPassword").Msg("invalid master password")
		return "", ErrInvalidMasterPassword
	}

	g.authenticated = true
	return password, nil
}

func (g *masterPasswordGate) ReplaceVerifier(ctx context.Context, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.authenticated {
		return ErrVaultLocked
	}
	if err := g.store.Set(ctx, store.KeyMasterPassword, utils.SHA256Hex(password)); err != nil {
		return fmt.Errorf("replace verifier: %w", err)
	}
	return nil
}

func (g *masterPasswordGate) Reset(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.authenticated = false

	err := errors.Join(
		g.store.Remove(ctx, store.KeyAccounts),
		g.store.Remove(ctx, store.KeyMasterPassword),
	)
	if err != nil {
		g.logger.Err(err).Str("func", "*masterPasswordGate.Reset").Msg("failed to reset vault")
		return fmt.Errorf("reset vault: %w", err)
	}

	g.logger.Info().Str("func", "*masterPasswordGate.Reset").Msg("vault reset")
	return nil
}

func (g *masterPasswordGate) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.authenticated = false
}

func (g *masterPasswordGate) verifierExists(ctx context.Context) (bool, error) {
	_, err := g.store.Get(ctx, store.KeyMasterPassword)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrRecordNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("read verifier: %w", err)
	}
}
