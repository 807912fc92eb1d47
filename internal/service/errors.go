package service

import "errors"

var (
	// ErrMovieNotFound is returned when the requested movie does not exist.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrMovieRejected wraps payloads that failed validation, locally or on
	// the server. The messages are available through validators.Messages.
	ErrMovieRejected = errors.New("movie rejected")

	// ErrReplayInterrupted is returned by SyncPending when a transport
	// failure stopped the pass. Unreplayed operations stay queued.
	ErrReplayInterrupted = errors.New("replay interrupted")

	ErrInvalidMovieID = errors.New("invalid movie id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
