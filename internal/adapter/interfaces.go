// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the movie server.
//
// [ServerAdapter] decouples the sync engine from HTTP. Errors are mapped to
// the sentinel values in errors.go so callers can tell a server that refused
// a request ([IsRejected]) from one that could not be reached at all.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-movie-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the movie server.
type ServerAdapter interface {
	// List fetches the full catalog.
	List(ctx context.Context) ([]models.Movie, error)

	// Get fetches one record. Returns [ErrNotFound] (wrapped) when absent.
	Get(ctx context.Context, id models.MovieID) (models.Movie, error)

	// Create stores a new record and returns it with the server-assigned id.
	// A 400 reply wraps [ErrBadRequest] and carries the validation messages.
	Create(ctx context.Context, movie models.MovieFields) (models.Movie, error)

	// Update replaces the fields of an existing record and returns the
	// stored result.
	Update(ctx context.Context, id models.MovieID, movie models.MovieFields) (models.Movie, error)

	// Delete removes a record. A record that is already gone is not an error.
	Delete(ctx context.Context, id models.MovieID) error

	// Ping probes the health route. Any non-2xx reply, transport failure or
	// timeout is an error.
	Ping(ctx context.Context) error
}
