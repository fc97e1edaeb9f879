package models

// CodeWindow is the ephemeral view of one account's one-time codes at a
// point in time. It is derived from the secret and the wall clock only and is
// never persisted.
type CodeWindow struct {
	AccountID   string
	Code        string
	NextCode    string
	SecondsLeft int

	// Counter is the TOTP time-step the codes were computed for.
	Counter int64

	// Err is set when the secret could not produce a code; Code and NextCode
	// then hold the failure sentinel.
	Err error
}
