// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration has no HTTP address to serve the movie API on.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	errNoServices = errors.New("no services to serve")
)
