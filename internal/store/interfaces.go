package store

import (
	"context"

	"github.com/MKhiriev/go-movie-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// MovieRepository is the server-side movie storage.
//
// Identifiers are assigned by the repository from a monotonically increasing
// sequence and are never reused, even after a delete.
type MovieRepository interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id int64) (models.Movie, error)
	CreateMovie(ctx context.Context, movie models.MovieFields) (models.Movie, error)
	UpdateMovie(ctx context.Context, id int64, movie models.MovieFields) (models.Movie, error)
	// DeleteMovie is idempotent: deleting a missing id is not an error.
	DeleteMovie(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
