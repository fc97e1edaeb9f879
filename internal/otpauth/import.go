package otpauth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// ImportVersion is the only supported bulk-import document version.
const ImportVersion = 1

// ReadImportFile decodes a bulk-import document and returns one credential
// per entry. The secret and issuer come from the entry URI query, the
// username from the entry name. A single bad entry fails the whole file.
func ReadImportFile(r io.Reader) ([]models.OTPCredential, error) {
	var file models.ImportFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportFile, err)
	}
	if file.Version != ImportVersion || file.Entries == nil {
		return nil, ErrUnsupportedImportFile
	}

	creds := make([]models.OTPCredential, 0, len(file.Entries))
	for i, entry := range file.Entries {
		u, err := url.Parse(entry.Content.URI)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, ErrInvalidURI)
		}

		q := u.Query()
		secret := q.Get("secret")
		if secret == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrNoSecret)
		}

		creds = append(creds, models.OTPCredential{
			Issuer:   q.Get("issuer"),
			Username: entry.Content.Name,
			Secret:   secret,
		})
	}

	return creds, nil
}
