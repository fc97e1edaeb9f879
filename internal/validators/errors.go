package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = fmt.Errorf("%w: unknown field for validation", app.ErrValidation)

	ErrEmptyID          = fmt.Errorf("%w: account id is required", app.ErrValidation)
	ErrEmptySecret      = fmt.Errorf("%w: secret is required", app.ErrValidation)
	ErrInvalidSecret    = fmt.Errorf("%w: secret is not valid base32", app.ErrValidation)
	ErrInvalidFavicon   = fmt.Errorf("%w: favicon must be an absolute URL", app.ErrValidation)
	ErrFieldTooLong     = fmt.Errorf("%w: field is too long", app.ErrValidation)
	ErrInvalidField     = fmt.Errorf("%w: invalid field", app.ErrValidation)
	ErrNoFieldsToUpdate = fmt.Errorf("%w: at least one field must be provided for update", app.ErrValidation)
)
