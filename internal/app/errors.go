package app

import "errors"

// Sentinel roots of the error taxonomy.
var (
	// ErrValidation marks malformed input: an unparsable URI, an empty or
	// non-Base32 secret, a bad account field.
	ErrValidation = errors.New("validation error")

	// ErrAuthentication marks a wrong master password or a ciphertext whose
	// authentication tag did not verify.
	ErrAuthentication = errors.New("authentication failure")

	// ErrUnsupportedFormat marks input that is well-formed but of a kind the
	// vault does not handle (migration URIs, HOTP records, unknown import
	// versions).
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrStorageCorruption marks a persisted record that exists but cannot
	// be decoded.
	ErrStorageCorruption = errors.New("storage corruption")
)

// UserMessage maps err to the message shown to the user. Unknown errors
// collapse into [MsgUnexpectedError].
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthentication):
		return MsgInvalidMasterPassword
	case errors.Is(err, ErrUnsupportedFormat):
		return MsgUnsupportedFormat
	case errors.Is(err, ErrStorageCorruption):
		return MsgStorageCorrupted
	case errors.Is(err, ErrValidation):
		return MsgInvalidInput
	default:
		return MsgUnexpectedError
	}
}
