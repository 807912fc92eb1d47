// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
)

// describeError turns a service error into the text of the error overlay.
// Validation failures list every broken rule.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	if messages := validators.Messages(err); len(messages) > 0 {
		var b strings.Builder
		b.WriteString("The movie was rejected:")
		for _, m := range messages {
			b.WriteString("\n  • ")
			b.WriteString(m)
		}
		return b.String()
	}

	switch {
	case errors.Is(err, service.ErrMovieNotFound):
		return "Movie not found. It may have been deleted on the server."
	case errors.Is(err, service.ErrMovieRejected):
		return "The server rejected the movie."
	}

	return err.Error()
}
