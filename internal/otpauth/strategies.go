package otpauth

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pquerna/otp"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// StructuredStrategy reads the URI with net/url: secret and issuer from the
// query, username from the label after the colon.
type StructuredStrategy struct{}

func (StructuredStrategy) Name() string { return "structured" }

func (StructuredStrategy) Parse(uri string) (models.OTPCredential, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return models.OTPCredential{}, ErrInvalidURI
	}

	q := u.Query()
	secret := q.Get("secret")
	if secret == "" {
		return models.OTPCredential{}, ErrNoSecret
	}

	var username string
	path := u.EscapedPath()
	if strings.Contains(path, ":") {
		username = unescape(strings.Split(path, ":")[1])
	} else if parts := strings.Split(path, "/"); len(parts) > 2 {
		username = unescape(parts[2])
	}

	return models.OTPCredential{
		Issuer:   q.Get("issuer"),
		Username: username,
		Secret:   secret,
	}, nil
}

var (
	secretParam = regexp.MustCompile(`[?&]secret=([^&]+)`)
	issuerParam = regexp.MustCompile(`[?&]issuer=([^&]+)`)
	totpLabel   = regexp.MustCompile(`totp/([^:]+):([^?]+)`)
	anyLabel    = regexp.MustCompile(`/([^:]+):([^?]+)`)
)

// ScrapeStrategy pulls the fields out of the raw text with regular
// expressions. It copes with URIs net/url rejects, such as broken escapes.
type ScrapeStrategy struct{}

func (ScrapeStrategy) Name() string { return "scrape" }

func (ScrapeStrategy) Parse(uri string) (models.OTPCredential, error) {
	m := secretParam.FindStringSubmatch(uri)
	if m == nil || m[1] == "" {
		return models.OTPCredential{}, ErrNoSecret
	}
	cred := models.OTPCredential{Secret: m[1]}

	if m := issuerParam.FindStringSubmatch(uri); m != nil {
		cred.Issuer = unescape(m[1])
	}

	label := totpLabel.FindStringSubmatch(uri)
	if label == nil {
		label = anyLabel.FindStringSubmatch(uri)
	}
	if label != nil {
		cred.Username = unescape(label[2])
	}

	return cred, nil
}

// CanonicalStrategy delegates to the pquerna/otp key parser. It is the only
// strategy that checks the record type, and it splits "issuer/username"
// labels when no issuer is given.
type CanonicalStrategy struct{}

func (CanonicalStrategy) Name() string { return "canonical" }

func (CanonicalStrategy) Parse(uri string) (models.OTPCredential, error) {
	key, err := otp.NewKeyFromURL(uri)
	if err != nil {
		return models.OTPCredential{}, ErrInvalidURI
	}
	if !strings.EqualFold(key.Type(), "totp") {
		return models.OTPCredential{}, ErrNotTOTP
	}

	cred := models.OTPCredential{
		Issuer:   key.Issuer(),
		Username: key.AccountName(),
		Secret:   key.Secret(),
	}
	if cred.Secret == "" {
		return models.OTPCredential{}, ErrNoSecret
	}

	if issuer, username, ok := strings.Cut(cred.Username, "/"); ok {
		if cred.Issuer == "" && issuer != unknownLabel {
			cred.Issuer = issuer
		}
		cred.Username = username
	}

	return cred, nil
}

// unescape percent-decodes s, returning it unchanged when the escapes are
// broken.
func unescape(s string) string {
	if v, err := url.PathUnescape(s); err == nil {
		return v
	}
	return s
}
