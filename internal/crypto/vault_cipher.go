// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/MKhiriev/go-otp-keeper/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor used for every vault.
	// Changing it makes existing vaults unreadable.
	DefaultIterations = 100000

	// KeyLength is the derived key size in bytes (AES-256).
	KeyLength = 32

	// SaltLength is the size of the random PBKDF2 salt in bytes.
	SaltLength = 16

	// IVLength is the size of the random AES-GCM nonce in bytes.
	IVLength = 12
)

// vaultCipher is the private implementation of [VaultCipher].
type vaultCipher struct {
	iterations int
	random     io.Reader
}

// Option tunes a [VaultCipher] built by [NewVaultCipher].
type Option func(*vaultCipher)

// WithIterations overrides the PBKDF2 work factor. Only tests should use it:
// blobs sealed with a different count cannot be opened by a default cipher.
func WithIterations(n int) Option {
	return func(c *vaultCipher) {
		if n > 0 {
			c.iterations = n
		}
	}
}

// withRandom replaces the randomness source; used by tests to simulate a
// failing CSPRNG.
func withRandom(r io.Reader) Option {
	return func(c *vaultCipher) {
		c.random = r
	}
}

// NewVaultCipher constructs a [VaultCipher] with PBKDF2-HMAC-SHA256 at
// [DefaultIterations] and AES-256-GCM.
func NewVaultCipher(opts ...Option) VaultCipher {
	c := &vaultCipher{
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DeriveKey implements [VaultCipher]. The password is used as its raw UTF-8
// bytes.
func (c *vaultCipher) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, c.iterations, KeyLength, sha256.New)
}

// Encrypt implements [VaultCipher].
func (c *vaultCipher) Encrypt(plaintext []byte, password string) (models.EncryptedBlob, error) {
	// 1. Fresh salt and IV
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate salt: %w", err)
	}
	iv := make([]byte, IVLength)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate iv: %w", err)
	}

	// 2. Build AES-GCM cipher from the derived key
	gcm, err := c.newGCM(c.DeriveKey(password, salt))
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	// 3. Seal; the tag is appended to the ciphertext
	ciphertext := gcm.Seal(nil, iv, plaintext, nil)

	return models.EncryptedBlob{
		IV:         hex.EncodeToString(iv),
		Salt:       hex.EncodeToString(salt),
		Ciphertext: hex.EncodeToString(ciphertext),
	}, nil
}

// Decrypt implements [VaultCipher].
func (c *vaultCipher) Decrypt(blob models.EncryptedBlob, password string) ([]byte, error) {
	// 1. Decode hex parts
	iv, err := hex.DecodeString(blob.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: decode iv: %v", ErrMalformedBlob, err)
	}
	salt, err := hex.DecodeString(blob.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: decode salt: %v", ErrMalformedBlob, err)
	}
	ciphertext, err := hex.DecodeString(blob.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %v", ErrMalformedBlob, err)
	}
	if len(iv) != IVLength {
		return nil, fmt.Errorf("%w: iv length %d", ErrMalformedBlob, len(iv))
	}
	if len(salt) != SaltLength {
		return nil, fmt.Errorf("%w: salt length %d", ErrMalformedBlob, len(salt))
	}

	// 2. Re-derive the key and build the cipher
	gcm, err := c.newGCM(c.DeriveKey(password, salt))
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrMalformedBlob)
	}

	// 3. Open and verify the tag
	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func (c *vaultCipher) newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
