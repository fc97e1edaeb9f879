package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SHA256Hex returns the lower-case hex SHA-256 digest of data.
//
// Example usage:
//
//	verifier := utils.SHA256Hex("correct horse battery staple")
func SHA256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// EqualDigests compares two hex digests in constant time. Digests of
// different length are never equal.
func EqualDigests(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
