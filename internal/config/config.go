// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-otp-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects the key-value backend that holds the vault records.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds master-password attempt throttling settings.
	Auth Auth `envPrefix:"AUTH_"`

	// TOTP holds code refresh settings.
	TOTP TOTP `envPrefix:"TOTP_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the vault persistence settings.
type Storage struct {
	// Backend is one of "memory", "file", "sqlite" or "bolt".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the file the backend keeps its records in. Ignored by the
	// memory backend.
	// Env: STORAGE_PATH
	Path string `env:"PATH"`
}

// Auth holds the unlock throttling settings.
type Auth struct {
	// AttemptInterval is the refill period of the unlock attempt bucket.
	// Zero disables throttling.
	// Env: AUTH_ATTEMPT_INTERVAL
	AttemptInterval time.Duration `env:"ATTEMPT_INTERVAL"`

	// AttemptBurst is the number of attempts allowed back to back.
	// Env: AUTH_ATTEMPT_BURST
	AttemptBurst int `env:"ATTEMPT_BURST"`
}

// TOTP holds code refresh settings.
type TOTP struct {
	// TickInterval is how often the countdown is re-emitted.
	// Env: TOTP_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`
}

// Log holds log sink settings.
type Log struct {
	// File is the path of the append-only client log. The terminal is owned
	// by the UI, so logs never go to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (the first source
// that sets a field wins):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
