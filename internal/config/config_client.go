package config

import (
	"fmt"
	"time"
)

// ClientStorage holds the key-value backend settings.
type ClientStorage struct {
	// Backend names the store implementation.
	Backend string
	// Path is the file backing the store.
	Path string
}

// ClientAuth holds unlock throttling settings.
type ClientAuth struct {
	// AttemptInterval is the token refill period; zero disables throttling.
	AttemptInterval time.Duration
	// AttemptBurst is the token bucket size.
	AttemptBurst int
}

// ClientTOTP holds code refresh settings.
type ClientTOTP struct {
	// TickInterval is the countdown refresh period.
	TickInterval time.Duration
}

// ClientLog holds log sink settings.
type ClientLog struct {
	// File is the log file path.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Storage contains the vault backend settings.
	Storage ClientStorage
	// Auth contains unlock throttling settings.
	Auth ClientAuth
	// TOTP contains code refresh settings.
	TOTP ClientTOTP
	// Log contains log sink settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// args are the command-line arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Storage: ClientStorage{
			Backend: cfg.Storage.Backend,
			Path:    cfg.Storage.Path,
		},
		Auth: ClientAuth{
			AttemptInterval: cfg.Auth.AttemptInterval,
			AttemptBurst:    cfg.Auth.AttemptBurst,
		},
		TOTP: ClientTOTP{TickInterval: cfg.TOTP.TickInterval},
		Log:  ClientLog{File: cfg.Log.File},
	}

	return clientCfg, clientCfg.validate()
}
