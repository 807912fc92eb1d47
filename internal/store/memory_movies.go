package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// memoryMovieRepository keeps the catalog in process memory. It is what the
// server runs on when no database DSN is configured; contents are lost on
// restart.
type memoryMovieRepository struct {
	mu     sync.RWMutex
	movies []models.Movie
	nextID int64

	logger *logger.Logger
}

// NewMemoryMovieRepository returns a [MovieRepository] preloaded with seed.
// The next assigned id is one above the largest seed id.
func NewMemoryMovieRepository(seed []models.Movie, logger *logger.Logger) MovieRepository {
	repo := &memoryMovieRepository{
		movies: make([]models.Movie, 0, len(seed)),
		nextID: 1,
		logger: logger,
	}

	for _, m := range seed {
		id, err := m.ID.Int64()
		if err != nil {
			logger.Warn().Err(err).Str("func", "NewMemoryMovieRepository").Msg("skipping seed movie with non-numeric id")
			continue
		}
		m.Unconfirmed = false
		repo.movies = append(repo.movies, m)
		if id >= repo.nextID {
			repo.nextID = id + 1
		}
	}

	return repo
}

func (r *memoryMovieRepository) ListMovies(_ context.Context) ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.movies), nil
}

func (r *memoryMovieRepository) GetMovie(_ context.Context, id int64) (models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Movie{}, ErrNotFound
	}
	return r.movies[i], nil
}

func (r *memoryMovieRepository) CreateMovie(_ context.Context, fields models.MovieFields) (models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie := models.NewMovie(models.MovieIDFromInt(r.nextID), fields)
	r.nextID++
	r.movies = append(r.movies, movie)

	return movie, nil
}

func (r *memoryMovieRepository) UpdateMovie(_ context.Context, id int64, fields models.MovieFields) (models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Movie{}, ErrNotFound
	}
	r.movies[i].MovieFields = fields

	return r.movies[i], nil
}

func (r *memoryMovieRepository) DeleteMovie(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.movies = slices.Delete(r.movies, i, i+1)
	}
	return nil
}

// indexOf must be called with mu held.
func (r *memoryMovieRepository) indexOf(id int64) int {
	want := models.MovieIDFromInt(id)
	return slices.IndexFunc(r.movies, func(m models.Movie) bool { return m.ID == want })
}
