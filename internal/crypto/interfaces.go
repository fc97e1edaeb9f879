package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

import "github.com/MKhiriev/go-otp-keeper/models"

// VaultCipher seals and opens the vault contents under the master password.
// It knows nothing about storage, accounts or the UI.
//
// Scheme:
//
//	salt, iv = 16 and 12 random bytes            (fresh per call)
//	key      = PBKDF2-HMAC-SHA256(password, salt) (100 000 iterations, 32 bytes)
//	ct       = AES-256-GCM(key, iv, plaintext)   (tag appended)
//	blob     = {hex(iv), hex(salt), hex(ct)}
type VaultCipher interface {
	// DeriveKey stretches password with salt into a 256-bit AES key.
	DeriveKey(password string, salt []byte) []byte

	// Encrypt seals plaintext under a key derived from password. A new salt
	// and IV are drawn on every call, so two calls never share a (key, iv)
	// pair.
	Encrypt(plaintext []byte, password string) (models.EncryptedBlob, error)

	// Decrypt opens a blob produced by Encrypt. It returns ErrMalformedBlob
	// for bad hex or wrong IV/salt lengths and ErrDecryptionFailed when the
	// authentication tag does not verify. No plaintext is returned on error.
	Decrypt(blob models.EncryptedBlob, password string) ([]byte, error)
}
