package store

import (
	"context"

	"github.com/MKhiriev/go-movie-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStore is the client's local persistent string store.
type KeyValueStore interface {
	// ReadKey returns the value stored under key and whether it exists.
	ReadKey(ctx context.Context, key string) (string, bool, error)
	// WriteKey stores value under key, replacing any previous value.
	WriteKey(ctx context.Context, key, value string) error
	// RemoveKey deletes key. Removing a missing key is not an error.
	RemoveKey(ctx context.Context, key string) error
}

// CacheState is the pair of values the sync engine keeps on the device: the
// last known catalog and the mutations waiting for replay.
type CacheState struct {
	Movies []models.Movie
	Queue  []models.PendingOperation
}

// MovieCache persists a [CacheState] in a [KeyValueStore].
//
// Reads never fail: a missing or unreadable value is reported as empty.
// Every change goes through Mutate, which serializes read-modify-write
// cycles so concurrent callers never lose each other's updates.
type MovieCache interface {
	// Snapshot returns the cached catalog.
	Snapshot(ctx context.Context) []models.Movie
	// PendingOperations returns the queue in enqueue order.
	PendingOperations(ctx context.Context) []models.PendingOperation
	// Mutate loads the current state, applies fn and persists what changed.
	// When fn returns an error nothing is written.
	Mutate(ctx context.Context, fn func(state *CacheState) error) (CacheState, error)
}
