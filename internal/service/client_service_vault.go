package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/otpauth"
	"github.com/MKhiriev/go-otp-keeper/models"
)

type vaultService struct {
	gate     MasterPasswordGate
	accounts AccountStore
	parser   *otpauth.Parser
	logger   *logger.Logger
}

func NewVaultService(gate MasterPasswordGate, accounts AccountStore, parser *otpauth.Parser, log *logger.Logger) VaultService {
	return &vaultService{gate: gate, accounts: accounts, parser: parser, logger: log}
}

func (v *vaultService) Status(ctx context.Context) (models.GateState, error) {
	return v.gate.State(ctx)
}

func (v *vaultService) Setup(ctx context.Context, password string) error {
	key, err := v.gate.SetMasterPassword(ctx, password)
	if err != nil {
		return err
	}
	return v.open(ctx, key)
}

func (v *vaultService) Unlock(ctx context.Context, password string) error {
	key, err := v.gate.VerifyMasterPassword(ctx, password)
	if err != nil {
		return err
	}
	return v.open(ctx, key)
}

// open loads the accounts with key. A degraded load keeps the vault open
// with an empty list; any other failure locks it again.
func (v *vaultService) open(ctx context.Context, key string) error {
	err := v.accounts.Load(ctx, key)
	if err == nil {
		return nil
	}
	if errors.Is(err, app.ErrStorageCorruption) {
		v.logger.Warn().Err(err).Str("func", "*vaultService.open").Msg("vault opened with an empty account list")
		return nil
	}

	v.gate.Lock()
	return fmt.Errorf("load accounts: %w", err)
}

func (v *vaultService) Lock() {
	v.accounts.Lock()
	v.gate.Lock()
}

func (v *vaultService) ChangeMasterPassword(ctx context.Context, oldPassword, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}

	oldKey, err := v.gate.VerifyMasterPassword(ctx, oldPassword)
	if err != nil {
		return err
	}

	// the accounts and the verifier must end up under the same password, so
	// the switch runs to completion once it has started
	ctx = context.WithoutCancel(ctx)

	if err = v.accounts.Rekey(ctx, newPassword); err != nil {
		return fmt.Errorf("re-encrypt accounts: %w", err)
	}

	if err = v.gate.ReplaceVerifier(ctx, newPassword); err != nil {
		v.logger.Err(err).Str("func", "*vaultService.ChangeMasterPassword").Msg("failed to replace verifier, rolling back")
		if rbErr := v.accounts.Rekey(ctx, oldKey); rbErr != nil {
			v.logger.Err(rbErr).Str("func", "*vaultService.ChangeMasterPassword").Msg("rollback failed")
			return errors.Join(err, rbErr)
		}
		return err
	}

	v.logger.Info().Str("func", "*vaultService.ChangeMasterPassword").Msg("master password changed")
	return nil
}

func (v *vaultService) Reset(ctx context.Context) error {
	v.accounts.Lock()
	return v.gate.Reset(ctx)
}

func (v *vaultService) ImportURI(ctx context.Context, raw string) (models.Account, error) {
	cred, err := v.parser.Parse(raw)
	if err != nil {
		v.logger.Debug().Err(err).Str("func", "*vaultService.ImportURI").Msg("uri rejected")
		return models.Account{}, err
	}
	return v.accounts.Add(ctx, cred.ToNewAccount())
}

func (v *vaultService) ImportFile(ctx context.Context, r io.Reader) ([]models.Account, error) {
	creds, err := otpauth.ReadImportFile(r)
	if err != nil {
		v.logger.Debug().Err(err).Str("func", "*vaultService.ImportFile").Msg("import file rejected")
		return nil, err
	}

	added, err := v.accounts.AddMany(ctx, lo.Map(creds, func(c models.OTPCredential, _ int) models.NewAccount {
		return c.ToNewAccount()
	}))
	if err != nil {
		return nil, err
	}

	v.logger.Info().Str("func", "*vaultService.ImportFile").Int("accounts", len(added)).Msg("accounts imported")
	return added, nil
}

func (v *vaultService) ExportQRCode(_ context.Context, id string, size int, path string) error {
	if !v.accounts.Unlocked() {
		return ErrVaultLocked
	}

	account, err := v.accounts.Get(id)
	if err != nil {
		return err
	}
	return otpauth.WriteQRCode(account, size, path)
}
