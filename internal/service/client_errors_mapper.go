// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter"
)

// mapAdapterError translates an adapter error into a service error. ok is
// false when the failure is a transport problem and the caller should fall
// back to the offline path.
func mapAdapterError(err error) (mapped error, ok bool) {
	switch {
	case err == nil:
		return nil, true
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrMovieNotFound, err), true
	case adapter.IsRejected(err):
		return fmt.Errorf("%w: %w", ErrMovieRejected, err), true
	}

	return err, false
}
