package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	MovieRepository MovieRepository

	db *DB
}

// NewStorages picks the server backend. With a database DSN it connects to
// PostgreSQL, applies migrations and seeds an empty table. Without one the
// catalog lives in memory.
func NewStorages(ctx context.Context, cfg *config.ServerConfig, logger *logger.Logger) (*Storages, error) {
	seed, err := SeedMovies()
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseDSN == "" {
		logger.Info().Int("seed", len(seed)).Msg("no database configured, using in-memory movie repository")
		return &Storages{MovieRepository: NewMemoryMovieRepository(seed, logger)}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	repo := NewMovieRepository(db, logger).(*movieRepository)
	if err = repo.Seed(ctx, seed); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding failed: %w", err)
	}

	return &Storages{MovieRepository: repo, db: db}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
