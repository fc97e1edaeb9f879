// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
)

// ErrUserQuit is returned by the unlock flow when the user leaves the
// program instead of unlocking.
var ErrUserQuit = errors.New("user quit")

// userMessage turns a service error into the text shown on screen. Throttling
// and locked-vault errors get their own texts before the generic mapping,
// which would otherwise report them as a wrong password.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrTooManyAttempts):
		return app.MsgTooManyAttempts
	case errors.Is(err, service.ErrVaultLocked):
		return app.MsgVaultLocked
	case errors.Is(err, service.ErrEmptyPassword):
		return app.MsgEmptyMasterPassword
	default:
		return app.UserMessage(err)
	}
}
