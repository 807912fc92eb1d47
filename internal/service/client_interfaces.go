package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-movie-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientMovieService is the client's CRUD contract over the movie catalog.
// It works the same whether or not the server can be reached: when it cannot,
// reads come from the local cache and writes are applied locally and queued
// for replay.
type ClientMovieService interface {
	// List returns the catalog. It never fails: on any remote failure, or
	// when the server is unreachable, the cached snapshot is returned with
	// queued mutations applied on top.
	List(ctx context.Context) []models.Movie

	// Get returns the movie with id from List, or [ErrMovieNotFound].
	Get(ctx context.Context, id models.MovieID) (models.Movie, error)

	// Create validates fields and creates the movie. The returned record is
	// unconfirmed when the server could not be reached. Validation failures
	// and server rejections return [ErrMovieRejected] and queue nothing.
	Create(ctx context.Context, fields models.MovieFields) (models.Movie, error)

	// Update validates fields and replaces the movie with id. Same offline
	// behavior as Create. A movie the server does not know returns
	// [ErrMovieNotFound].
	Update(ctx context.Context, id models.MovieID, fields models.MovieFields) (models.Movie, error)

	// Delete removes the movie with id. The record leaves the cache at once;
	// Confirmed tells whether the server already acknowledged it.
	Delete(ctx context.Context, id models.MovieID) (models.DeleteResult, error)
}

// ClientSyncService replays mutations queued while offline.
type ClientSyncService interface {
	// SyncPending replays the queue in enqueue order and stops at the first
	// transport failure, returning [ErrReplayInterrupted]. An overlapping call
	// returns at once with an empty report.
	SyncPending(ctx context.Context) (models.SyncReport, error)

	// PendingOperations returns the queued mutations in enqueue order.
	PendingOperations(ctx context.Context) []models.PendingOperation
}

// ConnectivityReader exposes the last computed connectivity state.
type ConnectivityReader interface {
	State() models.ConnectivityState
}

// ClientConnectivityService owns the client's connectivity state.
type ClientConnectivityService interface {
	ConnectivityReader

	// Refresh re-reads the network signal, probes the server and stores the
	// result. Reconnect callbacks run once per unreachable to reachable
	// transition.
	Refresh(ctx context.Context) models.ConnectivityState

	// OnReconnect registers fn to run after each reconnect transition.
	OnReconnect(fn func(ctx context.Context))
}

// ClientConnectivityJob keeps the connectivity state fresh in the background
// and retries replay while operations stay queued.
type ClientConnectivityJob interface {
	// Start launches the job. It refreshes every interval, defaulting to
	// 30 seconds if interval is zero or negative, and right away on every
	// network signal transition. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Run refreshes until ctx is done. It blocks.
	Run(ctx context.Context)

	// Stop signals the job to exit and blocks until it has.
	Stop()
}
