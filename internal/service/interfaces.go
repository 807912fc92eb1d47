package service

import (
	"context"

	"github.com/MKhiriev/go-movie-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_service_mock.go -package=mock -exclude_interfaces=MovieServiceWrapper

// MovieService is the server-side movie catalog.
type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id int64) (models.Movie, error)
	CreateMovie(ctx context.Context, movie models.MovieFields) (models.Movie, error)
	// UpdateMovie merges the set fields of update into the stored movie.
	UpdateMovie(ctx context.Context, id int64, update models.MovieUpdate) (models.Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// AppInfoService answers the informational routes of the movie API.
type AppInfoService interface {
	// GetAppVersion is the configured server version.
	GetAppVersion(ctx context.Context) string
	// GetStatus is the body of the root route.
	GetStatus(ctx context.Context) models.StatusResponse
}

// MovieServiceWrapper decorates a MovieService with extra behavior such as
// validation.
type MovieServiceWrapper interface {
	Wrap(MovieService) MovieService
}
