// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImportFile is the bulk-export document produced by third-party
// authenticator apps:
//
//	{"version": 1, "entries": [{"content": {"name": "...", "uri": "otpauth://..."}}]}
//
// Only the fields needed to recover accounts are decoded.
type ImportFile struct {
	Version int           `json:"version"`
	Entries []ImportEntry `json:"entries"`
}

// ImportEntry is a single record of an [ImportFile].
type ImportEntry struct {
	Content ImportContent `json:"content"`
}

// ImportContent holds the display name and the otpauth URI of an entry.
type ImportContent struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}
