package models

// GateState describes where the master-password gate currently is.
type GateState int

const (
	// GateUninitialized means no master password has been chosen yet.
	GateUninitialized GateState = iota
	// GateLocked means a verifier exists but no password was verified in
	// this session.
	GateLocked
	// GateAuthenticated means the vault key is available.
	GateAuthenticated
)

func (s GateState) String() string {
	switch s {
	case GateUninitialized:
		return "uninitialized"
	case GateLocked:
		return "locked"
	case GateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
