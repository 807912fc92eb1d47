// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the movie client runtime.
//
// It wires the local cache, the server adapter, the sync engine and the
// terminal UI into one process lifecycle. Background workers keep the
// connectivity state fresh and replay queued operations while the UI runs.
package client
