package otpauth

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
)

var (
	// ErrMigrationNotSupported is returned for otpauth-migration:// payloads
	// produced by bulk export in some authenticator apps.
	ErrMigrationNotSupported = fmt.Errorf("%w: otpauth-migration URIs are not supported", app.ErrUnsupportedFormat)

	// ErrNotTOTP is returned for otpauth records of any type other than totp.
	ErrNotTOTP = fmt.Errorf("%w: only totp records are supported", app.ErrUnsupportedFormat)

	// ErrNoSecret is returned when no strategy could recover a secret.
	ErrNoSecret = fmt.Errorf("%w: no secret found", app.ErrValidation)

	// ErrInvalidURI is returned when the input cannot be parsed as a URI.
	ErrInvalidURI = fmt.Errorf("%w: malformed otpauth URI", app.ErrValidation)

	// ErrUnsupportedImportFile is returned for an import document of an
	// unknown version or without an entries array.
	ErrUnsupportedImportFile = fmt.Errorf("%w: unsupported import file", app.ErrUnsupportedFormat)

	// ErrInvalidImportFile is returned when the import document is not JSON.
	ErrInvalidImportFile = fmt.Errorf("%w: import file is not valid JSON", app.ErrValidation)

	// ErrEmptyQRContent is returned when there is nothing to encode.
	ErrEmptyQRContent = errors.New("qr content cannot be empty")

	// ErrGenerateQRCode wraps failures of the QR encoder.
	ErrGenerateQRCode = errors.New("failed to generate QR code")
)
