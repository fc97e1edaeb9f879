// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-wide error taxonomy and the
// user-facing messages shared by the OTP keeper services and its terminal UI.
//
// Every package-level error in the module wraps exactly one of the sentinel
// roots declared in errors.go, so callers can classify any failure with
// [errors.Is] without knowing which package produced it.
package app

const (
	// MsgInvalidMasterPassword is shown for any failed unlock attempt. It is
	// the same whether the password is wrong or no verifier is stored.
	MsgInvalidMasterPassword = "invalid master password"

	// MsgTooManyAttempts is shown when unlock attempts are throttled.
	MsgTooManyAttempts = "too many attempts, try again later"

	// MsgEmptyMasterPassword is shown when the setup form is submitted with
	// an empty password.
	MsgEmptyMasterPassword = "master password must not be empty"

	// MsgPasswordsDoNotMatch is shown when the setup confirmation differs
	// from the chosen password.
	MsgPasswordsDoNotMatch = "passwords do not match"

	// MsgInvalidInput is shown when a URI, a secret or an account field
	// cannot be accepted.
	MsgInvalidInput = "invalid input"

	// MsgUnsupportedFormat is shown for migration URIs, non-TOTP records and
	// unknown import file layouts.
	MsgUnsupportedFormat = "unsupported format"

	// MsgStorageCorrupted is shown when stored vault data could not be read.
	// The vault keeps working with an empty account list.
	MsgStorageCorrupted = "stored accounts could not be read"

	// MsgStorageRecovered is shown on setup after an unreadable vault file was
	// moved aside.
	MsgStorageRecovered = "the vault file could not be read and was set aside, create a new master password"

	// MsgVaultLocked is shown when an operation needs an unlocked vault.
	MsgVaultLocked = "vault is locked"

	// MsgUnexpectedError is shown for failures the user cannot resolve. The
	// underlying error is written to the log only.
	MsgUnexpectedError = "unexpected error, see log for details"
)
