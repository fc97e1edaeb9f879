// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"strings"
)

// validate checks the merged [StructuredConfig] for values no source can
// make valid later: an unknown backend name or negative durations.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Backend != "" && !slices.Contains(knownBackends(), strings.ToLower(cfg.Storage.Backend)) {
		return ErrInvalidStorageConfigs
	}
	if cfg.Auth.AttemptInterval < 0 || cfg.Auth.AttemptBurst < 0 {
		return ErrInvalidAuthConfigs
	}
	if cfg.TOTP.TickInterval < 0 {
		return ErrInvalidTOTPConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	backend := strings.ToLower(cfg.Storage.Backend)
	if !slices.Contains(knownBackends(), backend) {
		return ErrInvalidStorageConfigs
	}
	if backend != BackendMemory && cfg.Storage.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.AttemptInterval < 0 || cfg.Auth.AttemptBurst < 1 {
		return ErrInvalidAuthConfigs
	}

	if cfg.TOTP.TickInterval <= 0 || cfg.TOTP.TickInterval > DefaultTOTPTickMax {
		return ErrInvalidTOTPConfigs
	}

	if cfg.Log.File == "" {
		return ErrInvalidLogConfigs
	}

	return nil
}
