package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type movieService struct {
	movieRepository store.MovieRepository

	logger *logger.Logger
}

// NewMovieService returns the server's [MovieService] over repo. It performs
// no validation; wrap it with [NewMovieValidationService] for that.
func NewMovieService(repo store.MovieRepository, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: repo,
		logger:          logger,
	}
}

func (m *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return m.movieRepository.ListMovies(ctx)
}

func (m *movieService) GetMovie(ctx context.Context, id int64) (models.Movie, error) {
	return m.movieRepository.GetMovie(ctx, id)
}

func (m *movieService) CreateMovie(ctx context.Context, movie models.MovieFields) (models.Movie, error) {
	created, err := m.movieRepository.CreateMovie(ctx, movie)
	if err != nil {
		return models.Movie{}, fmt.Errorf("create movie: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*movieService.CreateMovie").Str("id", created.ID.String()).Msg("movie created")
	return created, nil
}

func (m *movieService) UpdateMovie(ctx context.Context, id int64, update models.MovieUpdate) (models.Movie, error) {
	existing, err := m.movieRepository.GetMovie(ctx, id)
	if err != nil {
		return models.Movie{}, err
	}

	return m.movieRepository.UpdateMovie(ctx, id, update.Apply(existing.MovieFields))
}

func (m *movieService) DeleteMovie(ctx context.Context, id int64) error {
	return m.movieRepository.DeleteMovie(ctx, id)
}
