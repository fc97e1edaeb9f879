package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
)

var (
	// ErrMalformedBlob is returned when a stored blob is not valid hex or its
	// IV or salt has the wrong length.
	ErrMalformedBlob = fmt.Errorf("%w: malformed encrypted blob", app.ErrStorageCorruption)

	// ErrDecryptionFailed is returned when the GCM tag check fails, which
	// means a wrong password or tampered data.
	ErrDecryptionFailed = fmt.Errorf("%w: decryption failed", app.ErrAuthentication)
)
