// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the movie client.
//
// A single bubbletea model switches between the movie list, the detail view
// and the create/edit form. All data access goes through the client services,
// so the screens behave the same online and offline; records waiting for
// replay are marked and the header shows connectivity and queue length.
package tui
