// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedBlob is the persisted form of an authenticated-encryption result.
// All three fields are lower-case hex strings.
//
// IV (12 bytes) and Salt (16 bytes) are freshly random on every encryption;
// Ciphertext carries the GCM authentication tag at its end.
type EncryptedBlob struct {
	IV         string `json:"iv"`
	Salt       string `json:"salt"`
	Ciphertext string `json:"ciphertext"`
}
