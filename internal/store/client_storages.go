package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
)

// ClientStorages groups the client-side storage: the raw key-value store and
// the movie cache built on top of it.
type ClientStorages struct {
	KeyValueStore KeyValueStore
	MovieCache    MovieCache

	db *DB
}

// NewClientStorages initialises the client storage layer.
//
// [config.MemoryCacheDSN] selects an in-memory store. Any other DSN opens
// (and creates if needed) an SQLite file and applies its migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.Cache.DSN).Msg("creating client storages...")

	storages := &ClientStorages{}
	if cfg.Cache.DSN == config.MemoryCacheDSN {
		storages.KeyValueStore = NewMemoryKeyValueStore()
	} else {
		db, err := NewConnectSQLite(ctx, cfg.Cache.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		storages.db = db
		storages.KeyValueStore = NewSQLiteKeyValueStore(db, logger)
	}

	storages.MovieCache = NewMovieCache(storages.KeyValueStore, cfg.Cache.SnapshotKey, cfg.Cache.QueueKey, logger)

	return storages, nil
}

// Close releases the underlying database, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
