// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface driven by [App].
type UI interface {
	// UnlockFlow blocks until the vault is unlocked or the user quits.
	UnlockFlow(ctx context.Context) error
	// MainLoop blocks while the vault is open. lock is true when the user
	// asked to lock the vault instead of quitting.
	MainLoop(ctx context.Context) (lock bool, err error)
}
