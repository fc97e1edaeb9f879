// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package otpauth turns otpauth:// URIs and bulk-import documents into
// credentials, and renders accounts back into URIs and QR codes.
//
// Parsing is tolerant. An input is first normalized into an otpauth:// URI,
// then handed to an ordered list of strategies; the first one that finds a
// non-empty secret wins. Malformed input never panics.
package otpauth

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-otp-keeper/models"
)

const (
	scheme          = "otpauth://"
	schemePrefix    = "otpauth:"
	migrationScheme = "otpauth-migration://"

	// unknownLabel prefixes bare strings so they still look like a URI.
	unknownLabel = "unknown"
)

// Strategy extracts a credential from a normalized otpauth URI.
type Strategy interface {
	Name() string
	Parse(uri string) (models.OTPCredential, error)
}

// Parser runs strategies in order until one returns a secret.
type Parser struct {
	strategies []Strategy
}

// NewParser returns a Parser using the given strategies, or the default
// structured, scrape and canonical chain when none are passed.
func NewParser(strategies ...Strategy) *Parser {
	if len(strategies) == 0 {
		strategies = []Strategy{
			StructuredStrategy{},
			ScrapeStrategy{},
			CanonicalStrategy{},
		}
	}
	return &Parser{strategies: strategies}
}

// Normalize coerces raw text into an otpauth:// URI. "otpauth:" without the
// slashes is repaired; anything else becomes the label of an unknown entry.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, scheme):
		return s
	case strings.HasPrefix(s, schemePrefix):
		return scheme + strings.TrimPrefix(s, schemePrefix)
	default:
		return scheme + "totp/" + unknownLabel + ":" + s
	}
}

// Parse extracts issuer, username and secret from raw. On failure the error
// wraps ErrNoSecret together with the most specific strategy failure.
func (p *Parser) Parse(raw string) (models.OTPCredential, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, migrationScheme) {
		return models.OTPCredential{}, ErrMigrationNotSupported
	}

	uri := Normalize(s)

	var cause error
	for _, strategy := range p.strategies {
		cred, err := strategy.Parse(uri)
		if err == nil && cred.Secret != "" {
			return cred, nil
		}
		cause = moreSpecific(cause, err)
	}

	if cause == nil || errors.Is(cause, ErrNoSecret) {
		return models.OTPCredential{}, ErrNoSecret
	}
	return models.OTPCredential{}, errors.Join(ErrNoSecret, cause)
}

// moreSpecific keeps the first unsupported-format failure; otherwise the
// first non-nil one.
func moreSpecific(current, next error) error {
	if next == nil {
		return current
	}
	if current == nil {
		return next
	}
	if !isUnsupported(current) && isUnsupported(next) {
		return next
	}
	return current
}

func isUnsupported(err error) bool {
	return errors.Is(err, ErrNotTOTP) || errors.Is(err, ErrMigrationNotSupported)
}
