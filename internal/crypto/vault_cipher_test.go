package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

// fastCipher keeps the suite quick; the work factor does not change the
// format.
func fastCipher() VaultCipher {
	return NewVaultCipher(WithIterations(1))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func flipHexByte(t *testing.T, s string, idx int) string {
	t.Helper()
	raw, err := hex.DecodeString(s)
	require.NoError(t, err)
	raw[idx] ^= 0x01
	return hex.EncodeToString(raw)
}

func TestNewVaultCipher_DefaultIterations(t *testing.T) {
	c := NewVaultCipher().(*vaultCipher)
	assert.Equal(t, 100000, c.iterations)
	assert.Equal(t, DefaultIterations, c.iterations)
}

func TestWithIterations_IgnoresNonPositive(t *testing.T) {
	c := NewVaultCipher(WithIterations(0)).(*vaultCipher)
	assert.Equal(t, DefaultIterations, c.iterations)
}

func TestDeriveKey_KnownVector(t *testing.T) {
	// PBKDF2-HMAC-SHA256, P="passwd", S="salt", c=1 (RFC 7914 section 11).
	c := NewVaultCipher(WithIterations(1))

	key := c.DeriveKey("passwd", []byte("salt"))

	assert.Len(t, key, KeyLength)
	assert.Equal(t, "55ac046e56e3089fec1691c22544b605f94185216dde0465e68b9d57c20dacbc", hex.EncodeToString(key))
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	c := fastCipher()

	k1 := c.DeriveKey("same password", []byte("salt-one-16bytes"))
	k2 := c.DeriveKey("same password", []byte("salt-two-16bytes"))

	assert.NotEqual(t, k1, k2)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := fastCipher()

	tests := []struct {
		name      string
		plaintext []byte
		password  string
	}{
		{name: "json array", plaintext: []byte(`[{"id":"1","secret":"JBSWY3DPEHPK3PXP"}]`), password: "hunter2"},
		{name: "empty plaintext", plaintext: []byte{}, password: "hunter2"},
		{name: "unicode password", plaintext: []byte("payload"), password: "пароль-🔑"},
		{name: "empty password", plaintext: []byte("payload"), password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := c.Encrypt(tt.plaintext, tt.password)
			require.NoError(t, err)

			got, err := c.Decrypt(blob, tt.password)
			require.NoError(t, err)
			assert.Equal(t, string(tt.plaintext), string(got))
		})
	}
}

func TestEncryptDecrypt_RoundTripDefaultIterations(t *testing.T) {
	c := NewVaultCipher()

	blob, err := c.Encrypt([]byte("secret list"), "master")
	require.NoError(t, err)

	got, err := c.Decrypt(blob, "master")
	require.NoError(t, err)
	assert.Equal(t, "secret list", string(got))
}

func TestEncrypt_BlobShape(t *testing.T) {
	c := fastCipher()
	plaintext := []byte("0123456789")

	blob, err := c.Encrypt(plaintext, "pw")
	require.NoError(t, err)

	assert.Len(t, blob.IV, IVLength*2)
	assert.Len(t, blob.Salt, SaltLength*2)
	// GCM appends a 16-byte tag.
	assert.Len(t, blob.Ciphertext, (len(plaintext)+16)*2)
	assert.Regexp(t, "^[0-9a-f]+$", blob.IV+blob.Salt+blob.Ciphertext)
}

func TestEncrypt_OpenableWithPlainPBKDF2AndGCM(t *testing.T) {
	// The blob layout must stay readable by any PBKDF2 + AES-GCM
	// implementation that appends the tag (e.g. WebCrypto).
	c := fastCipher()

	blob, err := c.Encrypt([]byte("interop"), "pw")
	require.NoError(t, err)

	iv, _ := hex.DecodeString(blob.IV)
	salt, _ := hex.DecodeString(blob.Salt)
	ct, _ := hex.DecodeString(blob.Ciphertext)

	key := pbkdf2.Key([]byte("pw"), salt, 1, 32, sha256.New)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	got, err := gcm.Open(nil, iv, ct, nil)
	require.NoError(t, err)
	assert.Equal(t, "interop", string(got))
}

func TestEncrypt_FreshSaltAndIVPerCall(t *testing.T) {
	c := fastCipher()

	ivs := make(map[string]struct{}, 1000)
	salts := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		blob, err := c.Encrypt([]byte("same"), "same")
		require.NoError(t, err)
		ivs[blob.IV] = struct{}{}
		salts[blob.Salt] = struct{}{}
	}

	assert.Len(t, ivs, 1000)
	assert.Len(t, salts, 1000)
}

func TestEncrypt_RandomFailure(t *testing.T) {
	c := NewVaultCipher(WithIterations(1), withRandom(failingReader{}))

	_, err := c.Encrypt([]byte("x"), "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate salt")
}

func TestDecrypt_WrongPassword(t *testing.T) {
	c := fastCipher()

	blob, err := c.Encrypt([]byte("payload"), "right")
	require.NoError(t, err)

	got, err := c.Decrypt(blob, "wrong")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.ErrorIs(t, err, app.ErrAuthentication)
}

func TestDecrypt_Tampering(t *testing.T) {
	c := fastCipher()

	tests := []struct {
		name   string
		tamper func(t *testing.T, b models.EncryptedBlob) models.EncryptedBlob
	}{
		{
			name: "ciphertext first byte",
			tamper: func(t *testing.T, b models.EncryptedBlob) models.EncryptedBlob {
				b.Ciphertext = flipHexByte(t, b.Ciphertext, 0)
				return b
			},
		},
		{
			name: "tag last byte",
			tamper: func(t *testing.T, b models.EncryptedBlob) models.EncryptedBlob {
				raw, _ := hex.DecodeString(b.Ciphertext)
				b.Ciphertext = flipHexByte(t, b.Ciphertext, len(raw)-1)
				return b
			},
		},
		{
			name: "iv",
			tamper: func(t *testing.T, b models.EncryptedBlob) models.EncryptedBlob {
				b.IV = flipHexByte(t, b.IV, 5)
				return b
			},
		},
		{
			name: "salt",
			tamper: func(t *testing.T, b models.EncryptedBlob) models.EncryptedBlob {
				b.Salt = flipHexByte(t, b.Salt, 15)
				return b
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := c.Encrypt([]byte("do not touch"), "pw")
			require.NoError(t, err)

			got, err := c.Decrypt(tt.tamper(t, blob), "pw")
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
		})
	}
}

func TestDecrypt_MalformedBlob(t *testing.T) {
	c := fastCipher()

	valid, err := c.Encrypt([]byte("payload"), "pw")
	require.NoError(t, err)

	tests := []struct {
		name string
		blob models.EncryptedBlob
	}{
		{name: "iv not hex", blob: models.EncryptedBlob{IV: "zz", Salt: valid.Salt, Ciphertext: valid.Ciphertext}},
		{name: "salt not hex", blob: models.EncryptedBlob{IV: valid.IV, Salt: "xyz", Ciphertext: valid.Ciphertext}},
		{name: "ciphertext not hex", blob: models.EncryptedBlob{IV: valid.IV, Salt: valid.Salt, Ciphertext: "not-hex"}},
		{name: "short iv", blob: models.EncryptedBlob{IV: "00", Salt: valid.Salt, Ciphertext: valid.Ciphertext}},
		{name: "short salt", blob: models.EncryptedBlob{IV: valid.IV, Salt: "0011", Ciphertext: valid.Ciphertext}},
		{name: "ciphertext shorter than tag", blob: models.EncryptedBlob{IV: valid.IV, Salt: valid.Salt, Ciphertext: "00"}},
		{name: "empty blob", blob: models.EncryptedBlob{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Decrypt(tt.blob, "pw")
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrMalformedBlob)
			assert.ErrorIs(t, err, app.ErrStorageCorruption)
			assert.NotErrorIs(t, err, app.ErrAuthentication)
		})
	}
}
