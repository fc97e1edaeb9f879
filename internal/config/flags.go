package config

import (
	"flag"
	"fmt"
	"slices"
	"strings"
	"time"
)

// BackendName holds a storage backend name given on the command line.
// It implements the flag.Value interface and rejects unknown names early.
type BackendName string

// String returns the backend name.
func (n *BackendName) String() string {
	if n == nil {
		return ""
	}
	return string(*n)
}

// Set validates and stores the backend name. Names are case-insensitive.
func (n *BackendName) Set(s string) error {
	name := strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(knownBackends(), name) {
		return fmt.Errorf("unknown storage backend %q, want one of %s", s, strings.Join(knownBackends(), ", "))
	}
	*n = BackendName(name)
	return nil
}

func knownBackends() []string {
	return []string{BackendMemory, BackendFile, BackendSQLite, BackendBolt}
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-s storage backend (memory, file, sqlite, bolt)
//	-d storage file path
//	-attempt-interval unlock attempt refill period (e.g. "2s"); 0 disables throttling
//	-attempt-burst unlock attempts allowed back to back
//	-tick countdown refresh period (e.g. "100ms")
//	-log-file client log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("otp-keeper", flag.ContinueOnError)

	var backend BackendName
	var storagePath string
	var attemptInterval time.Duration
	var attemptBurst int
	var tick time.Duration
	var logFile string
	var jsonConfigPath string

	fs.Var(&backend, "s", "Storage backend: memory, file, sqlite or bolt")
	fs.StringVar(&storagePath, "d", "", "Storage file path")
	fs.DurationVar(&attemptInterval, "attempt-interval", 0, "Unlock attempt refill period (e.g., 2s); 0 disables throttling")
	fs.IntVar(&attemptBurst, "attempt-burst", 0, "Unlock attempts allowed back to back")
	fs.DurationVar(&tick, "tick", 0, "Countdown refresh period (e.g., 100ms)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Backend: string(backend),
			Path:    storagePath,
		},
		Auth: Auth{
			AttemptInterval: attemptInterval,
			AttemptBurst:    attemptBurst,
		},
		TOTP:         TOTP{TickInterval: tick},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
