package otpauth

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadImportFile(t *testing.T) {
	doc := `{
		"version": 1,
		"entries": [
			{"content": {"name": "alice@example.com", "uri": "otpauth://totp/GitHub:alice?secret=JBSWY3DPEHPK3PXP&issuer=GitHub"}},
			{"content": {"name": "bob", "uri": "otpauth://totp/bob?secret=MFRGG"}}
		]
	}`

	got, err := ReadImportFile(strings.NewReader(doc))

	require.NoError(t, err)
	assert.Equal(t, []models.OTPCredential{
		{Issuer: "GitHub", Username: "alice@example.com", Secret: "JBSWY3DPEHPK3PXP"},
		{Issuer: "", Username: "bob", Secret: "MFRGG"},
	}, got)
}

func TestReadImportFile_EmptyEntries(t *testing.T) {
	got, err := ReadImportFile(strings.NewReader(`{"version":1,"entries":[]}`))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadImportFile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		wantIs []error
	}{
		{name: "not json", doc: "version=1", wantIs: []error{ErrInvalidImportFile, app.ErrValidation}},
		{name: "empty document", doc: "", wantIs: []error{ErrInvalidImportFile}},
		{name: "wrong version", doc: `{"version":2,"entries":[]}`, wantIs: []error{ErrUnsupportedImportFile, app.ErrUnsupportedFormat}},
		{name: "missing version", doc: `{"entries":[]}`, wantIs: []error{ErrUnsupportedImportFile}},
		{name: "missing entries", doc: `{"version":1}`, wantIs: []error{ErrUnsupportedImportFile}},
		{name: "null entries", doc: `{"version":1,"entries":null}`, wantIs: []error{ErrUnsupportedImportFile}},
		{
			name:   "entries is not an array",
			doc:    `{"version":1,"entries":{"content":{}}}`,
			wantIs: []error{ErrInvalidImportFile},
		},
		{
			name: "entry without secret fails the whole file",
			doc: `{"version":1,"entries":[
				{"content":{"name":"ok","uri":"otpauth://totp/ok?secret=ABC"}},
				{"content":{"name":"bad","uri":"otpauth://totp/bad?issuer=X"}}
			]}`,
			wantIs: []error{ErrNoSecret},
		},
		{
			name:   "entry with malformed uri",
			doc:    `{"version":1,"entries":[{"content":{"name":"bad","uri":"otpauth://totp/%zz?secret=ABC"}}]}`,
			wantIs: []error{ErrInvalidURI},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadImportFile(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, got)
			for _, target := range tt.wantIs {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}
