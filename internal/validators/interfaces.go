// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks movie payloads before they reach storage or the
// server.
//
// The same [Validator] runs on both sides: the server rejects a bad payload
// with 400 and the client refuses to queue it. Failures are reported as a
// [*ValidationError] listing every broken rule.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
