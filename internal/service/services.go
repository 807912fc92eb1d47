package service

import (
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
)

type Services struct {
	MovieService   MovieService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	movies := NewMovieValidationService(validators.NewMovieValidator()).
		Wrap(NewMovieService(storages.MovieRepository, logger))

	return &Services{
		MovieService:   movies,
		AppInfoService: appInfo,
	}, nil
}
