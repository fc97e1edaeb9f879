// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package otp computes RFC 6238 time-based one-time passwords and keeps them
// fresh for the accounts on screen.
//
// The parameters are fixed: HMAC-SHA1, 6 digits, 30-second step. Per-account
// algorithm, digit or period overrides are not supported.
package otp

import (
	"encoding/base32"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"

	"github.com/MKhiriev/go-otp-keeper/models"
)

const (
	// Period is the TOTP time step in seconds.
	Period = 30

	// Digits is the number of digits of every code.
	Digits = 6

	// FailureCode is rendered instead of a code when the secret is unusable.
	FailureCode = "ERROR"
)

// Engine generates codes for Base32 secrets.
type Engine struct {
	opts hotp.ValidateOpts
}

// NewEngine returns an [Engine] producing 6-digit HMAC-SHA1 codes.
func NewEngine() *Engine {
	return &Engine{
		opts: hotp.ValidateOpts{
			Digits:    otp.DigitsSix,
			Algorithm: otp.AlgorithmSHA1,
		},
	}
}

// NormalizeSecret removes every whitespace rune from s and upper-cases the
// rest. Authenticator apps often show secrets in space-separated groups of
// four.
func NormalizeSecret(s string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// ValidateSecret reports whether s normalizes to a usable Base32 secret.
// Missing padding is accepted.
func ValidateSecret(s string) error {
	secret := NormalizeSecret(s)
	if secret == "" {
		return ErrEmptySecret
	}
	if n := len(secret) % 8; n != 0 {
		secret += strings.Repeat("=", 8-n)
	}
	if _, err := base32.StdEncoding.DecodeString(secret); err != nil {
		return ErrInvalidSecret
	}
	return nil
}

// Generate returns the code of secret for the time step containing
// epochSeconds.
func (e *Engine) Generate(secret string, epochSeconds int64) (string, error) {
	if epochSeconds < 0 {
		return "", ErrInvalidTime
	}
	return e.GenerateCounter(secret, uint64(Counter(epochSeconds)))
}

// GenerateCounter returns the HOTP code of secret for counter.
func (e *Engine) GenerateCounter(secret string, counter uint64) (string, error) {
	secret = NormalizeSecret(secret)
	if secret == "" {
		return "", ErrEmptySecret
	}

	code, err := hotp.GenerateCodeCustom(secret, counter, e.opts)
	if err != nil {
		if errors.Is(err, otp.ErrValidateSecretInvalidBase32) {
			return "", ErrInvalidSecret
		}
		return "", err
	}
	return code, nil
}

// Window computes the current and the next code of an account at the given
// instant. A secret that cannot produce codes yields [FailureCode] for both
// and the cause in Err; it never panics.
func (e *Engine) Window(accountID, secret string, at time.Time) models.CodeWindow {
	epoch := at.Unix()
	w := models.CodeWindow{
		AccountID:   accountID,
		SecondsLeft: SecondsLeft(epoch),
		Counter:     Counter(epoch),
	}

	code, err := e.Generate(secret, epoch)
	if err != nil {
		w.Code, w.NextCode, w.Err = FailureCode, FailureCode, err
		return w
	}
	next, err := e.Generate(secret, NextStep(epoch))
	if err != nil {
		w.Code, w.NextCode, w.Err = FailureCode, FailureCode, err
		return w
	}

	w.Code, w.NextCode = code, next
	return w
}

// Counter returns the TOTP time-step index of epochSeconds.
func Counter(epochSeconds int64) int64 {
	c := epochSeconds / Period
	if epochSeconds%Period < 0 {
		c--
	}
	return c
}

// SecondsLeft returns how many seconds remain in the step of epochSeconds,
// from 30 right at a boundary down to 1.
func SecondsLeft(epochSeconds int64) int {
	return Period - int(epochSeconds-Counter(epochSeconds)*Period)
}

// NextStep returns the first second of the step after the one containing
// epochSeconds. An exact boundary advances to the following step.
func NextStep(epochSeconds int64) int64 {
	return (Counter(epochSeconds) + 1) * Period
}

// UntilNextStep returns the duration from at to the next step boundary.
func UntilNextStep(at time.Time) time.Duration {
	next := time.Unix(NextStep(at.Unix()), 0)
	return next.Sub(at)
}
