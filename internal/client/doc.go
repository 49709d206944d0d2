// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the FlatNav client runtime.
//
// It wires local storage, the remote document store, the sync services,
// the background workers and the terminal UI into one process lifecycle.
// Command-line operations reuse the same wiring without starting the UI.
package client
