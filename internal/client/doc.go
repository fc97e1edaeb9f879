// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the vault services and the mutation queue
// into a single process lifecycle: unlock, work with codes, lock or quit.
package client
