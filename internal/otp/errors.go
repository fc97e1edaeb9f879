package otp

import (
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
)

var (
	// ErrEmptySecret is returned when the secret is empty after removing
	// whitespace.
	ErrEmptySecret = fmt.Errorf("%w: empty secret", app.ErrValidation)

	// ErrInvalidSecret is returned when the secret is not decodable Base32.
	ErrInvalidSecret = fmt.Errorf("%w: secret is not valid base32", app.ErrValidation)

	// ErrInvalidTime is returned for instants before the Unix epoch.
	ErrInvalidTime = fmt.Errorf("%w: time before unix epoch", app.ErrValidation)
)
