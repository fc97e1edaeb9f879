package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
)

var (
	ErrEmptyPassword         = fmt.Errorf("%w: master password is empty", app.ErrValidation)
	ErrAlreadyInitialized    = fmt.Errorf("%w: master password is already set", app.ErrValidation)
	ErrInvalidMasterPassword = fmt.Errorf("%w: invalid master password", app.ErrAuthentication)
	ErrTooManyAttempts       = fmt.Errorf("%w: too many unlock attempts", app.ErrAuthentication)

	ErrVaultLocked       = errors.New("vault is locked")
	ErrAccountNotFound   = fmt.Errorf("%w: account not found", app.ErrValidation)
	ErrCorruptedAccounts = fmt.Errorf("%w: stored accounts are unreadable", app.ErrStorageCorruption)
)
