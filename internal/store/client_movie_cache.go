package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type movieCache struct {
	kv          KeyValueStore
	snapshotKey string
	queueKey    string

	// guards every read-modify-write of both keys
	mu sync.Mutex

	logger *logger.Logger
}

// NewMovieCache returns a [MovieCache] storing the catalog under snapshotKey
// and the pending queue under queueKey as JSON arrays.
func NewMovieCache(kv KeyValueStore, snapshotKey, queueKey string, logger *logger.Logger) MovieCache {
	return &movieCache{
		kv:          kv,
		snapshotKey: snapshotKey,
		queueKey:    queueKey,
		logger:      logger,
	}
}

func (c *movieCache) Snapshot(ctx context.Context) []models.Movie {
	c.mu.Lock()
	defer c.mu.Unlock()

	movies, _ := readList[models.Movie](ctx, c, c.snapshotKey)
	return movies
}

func (c *movieCache) PendingOperations(ctx context.Context) []models.PendingOperation {
	c.mu.Lock()
	defer c.mu.Unlock()

	queue, _ := readList[models.PendingOperation](ctx, c, c.queueKey)
	return queue
}

func (c *movieCache) Mutate(ctx context.Context, fn func(state *CacheState) error) (CacheState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	movies, rawMovies := readList[models.Movie](ctx, c, c.snapshotKey)
	queue, rawQueue := readList[models.PendingOperation](ctx, c, c.queueKey)

	state := CacheState{Movies: movies, Queue: queue}
	if err := fn(&state); err != nil {
		return CacheState{Movies: movies, Queue: queue}, err
	}
	if state.Movies == nil {
		state.Movies = []models.Movie{}
	}
	if state.Queue == nil {
		state.Queue = []models.PendingOperation{}
	}

	// the queue goes first; rebase can rebuild the snapshot from it
	if err := c.writeList(ctx, c.queueKey, rawQueue, state.Queue); err != nil {
		return CacheState{}, err
	}
	if err := c.writeList(ctx, c.snapshotKey, rawMovies, state.Movies); err != nil {
		return CacheState{}, err
	}

	return CacheState{
		Movies: slices.Clone(state.Movies),
		Queue:  slices.Clone(state.Queue),
	}, nil
}

// writeList encodes v and writes it unless it equals the raw value read at
// the start of the cycle.
func (c *movieCache) writeList(ctx context.Context, key, raw string, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if string(encoded) == raw {
		return nil
	}

	if err = c.kv.WriteKey(ctx, key, string(encoded)); err != nil {
		c.logger.Err(err).Str("func", "*movieCache.writeList").Str("key", key).Msg("failed to persist cache value")
		return fmt.Errorf("persist %s: %w", key, err)
	}

	return nil
}

// readList decodes a JSON array stored under key. Absent, unreadable and
// corrupt values decode as an empty list. The raw value is returned so
// unchanged lists are not rewritten.
func readList[T any](ctx context.Context, c *movieCache, key string) ([]T, string) {
	log := c.logger

	raw, ok, err := c.kv.ReadKey(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("func", "movieCache.readList").Str("key", key).Msg("local store read failed, treating value as empty")
		return []T{}, ""
	}
	if !ok {
		return []T{}, ""
	}

	var list []T
	if err = json.Unmarshal([]byte(raw), &list); err != nil {
		log.Warn().Err(err).Str("func", "movieCache.readList").Str("key", key).Msg("corrupt cache value, treating as empty")
		return []T{}, raw
	}
	if list == nil {
		list = []T{}
	}

	return list, raw
}
