package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// MovieValidationService rejects invalid payloads before they reach the
// wrapped [MovieService].
type MovieValidationService struct {
	inner     MovieService
	validator validators.Validator
}

func NewMovieValidationService(validator validators.Validator) MovieServiceWrapper {
	return &MovieValidationService{
		validator: validator,
	}
}

func (v *MovieValidationService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return v.inner.ListMovies(ctx)
}

func (v *MovieValidationService) GetMovie(ctx context.Context, id int64) (models.Movie, error) {
	return v.inner.GetMovie(ctx, id)
}

func (v *MovieValidationService) CreateMovie(ctx context.Context, movie models.MovieFields) (models.Movie, error) {
	if err := v.validator.Validate(ctx, movie); err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrMovieRejected, err)
	}

	return v.inner.CreateMovie(ctx, movie)
}

// UpdateMovie validates the stored movie merged with update, so a partial
// body only has to be valid together with what is already stored.
func (v *MovieValidationService) UpdateMovie(ctx context.Context, id int64, update models.MovieUpdate) (models.Movie, error) {
	existing, err := v.inner.GetMovie(ctx, id)
	if err != nil {
		return models.Movie{}, err
	}

	if err = v.validator.Validate(ctx, update.Apply(existing.MovieFields)); err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrMovieRejected, err)
	}

	return v.inner.UpdateMovie(ctx, id, update)
}

func (v *MovieValidationService) DeleteMovie(ctx context.Context, id int64) error {
	return v.inner.DeleteMovie(ctx, id)
}

func (v *MovieValidationService) Wrap(wrapped MovieService) MovieService {
	v.inner = wrapped
	return v
}
