// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a single TOTP credential kept inside the encrypted vault.
//
// The whole ordered list of accounts is the unit of persistence: it is
// serialized to JSON and sealed as one blob on every mutation.
type Account struct {
	// ID is an opaque token, unique within the vault.
	ID string `json:"id" validate:"required"`

	// Issuer is the service name shown next to the code (e.g. "GitHub").
	Issuer string `json:"issuer"`

	// Username is the account label inside the issuer (e.g. an e-mail).
	Username string `json:"username"`

	// Secret is the Base32 TOTP seed, stored without whitespace and
	// upper-cased. It never changes after the account is created.
	Secret string `json:"secret" validate:"required,max=1024,totpsecret"`

	// Favicon is an optional icon URL rendered by the UI.
	Favicon string `json:"favicon,omitempty" validate:"omitempty,url"`
}

// NewAccount carries the user-supplied fields of an account that does not
// exist yet. The ID is assigned by the account store.
//
// Secret must already be normalized (see otp.NormalizeSecret) when the
// struct is validated.
type NewAccount struct {
	Issuer   string `json:"issuer" validate:"max=256"`
	Username string `json:"username" validate:"max=256"`
	Secret   string `json:"secret" validate:"required,max=1024,totpsecret"`
	Favicon  string `json:"favicon,omitempty" validate:"omitempty,max=2048,url"`
}

// AccountUpdate lists the mutable fields of an account. A nil pointer leaves
// the corresponding field unchanged. The secret is deliberately absent.
type AccountUpdate struct {
	Issuer   *string `validate:"omitempty,max=256"`
	Username *string `validate:"omitempty,max=256"`
	Favicon  *string `validate:"omitempty,max=2048,url|len=0"`
}

// Apply returns a copy of a with the non-nil fields of u written over it.
func (u AccountUpdate) Apply(a Account) Account {
	if u.Issuer != nil {
		a.Issuer = *u.Issuer
	}
	if u.Username != nil {
		a.Username = *u.Username
	}
	if u.Favicon != nil {
		a.Favicon = *u.Favicon
	}
	return a
}

// OTPCredential is the issuer/username/secret triple recovered from an
// otpauth URI or an import file entry.
type OTPCredential struct {
	Issuer   string
	Username string
	Secret   string
}

// ToNewAccount converts the credential into add-account input.
func (c OTPCredential) ToNewAccount() NewAccount {
	return NewAccount{
		Issuer:   c.Issuer,
		Username: c.Username,
		Secret:   c.Secret,
	}
}
