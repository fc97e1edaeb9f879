package otpauth

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// DefaultQRSize is the PNG edge length used when no size is given.
const DefaultQRSize = 256

// BuildURI renders a as otpauth://totp/<issuer>:<username>?secret=..&issuer=..
// The issuer part of the label and the issuer parameter are omitted when the
// issuer is empty.
func BuildURI(a models.Account) string {
	label := escapeLabel(a.Username)
	if a.Issuer != "" {
		label = escapeLabel(a.Issuer) + ":" + label
	}

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("totp/")
	b.WriteString(label)
	b.WriteString("?secret=")
	b.WriteString(url.QueryEscape(a.Secret))
	if a.Issuer != "" {
		b.WriteString("&issuer=")
		b.WriteString(url.QueryEscape(a.Issuer))
	}
	return b.String()
}

// QRCode encodes the URI of a as a PNG image.
func QRCode(a models.Account, size int) ([]byte, error) {
	if a.Secret == "" {
		return nil, ErrEmptyQRContent
	}
	if size <= 0 {
		size = DefaultQRSize
	}

	png, err := skipqrcode.Encode(BuildURI(a), skipqrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerateQRCode, err)
	}
	return png, nil
}

// WriteQRCode writes the QR code of a to path, readable by the owner only.
func WriteQRCode(a models.Account, size int, path string) error {
	png, err := QRCode(a, size)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, png, 0o600); err != nil {
		return fmt.Errorf("write qr code: %w", err)
	}
	return nil
}

// escapeLabel path-escapes s and also escapes the colon, which separates
// issuer from username.
func escapeLabel(s string) string {
	return strings.ReplaceAll(url.PathEscape(s), ":", "%3A")
}
