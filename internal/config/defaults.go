package config

import "time"

// Built-in values used when no other source sets a field.
const (
	DefaultStorageBackend  = BackendFile
	DefaultStoragePath     = "otp-keeper.json"
	DefaultAttemptBurst    = 5
	DefaultTOTPTick        = 100 * time.Millisecond
	DefaultLogFile         = "otp-keeper.log"
	DefaultAttemptInterval = time.Duration(0)
)

// Storage backend names accepted by STORAGE_BACKEND and -s.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Backend: DefaultStorageBackend,
			Path:    DefaultStoragePath,
		},
		Auth: Auth{
			AttemptInterval: DefaultAttemptInterval,
			AttemptBurst:    DefaultAttemptBurst,
		},
		TOTP: TOTP{TickInterval: DefaultTOTPTick},
		Log:  Log{File: DefaultLogFile},
	}
}

// DefaultTOTPTickMax bounds the countdown period; a slower tick would skip
// whole seconds of the countdown.
const DefaultTOTPTickMax = time.Second
