package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown backend or an empty path for a file backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates invalid throttling settings
	// (for example, a negative interval or a zero burst).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidTOTPConfigs indicates an unusable countdown period.
	ErrInvalidTOTPConfigs = errors.New("invalid totp configuration")
	// ErrInvalidLogConfigs indicates a missing log file path.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
