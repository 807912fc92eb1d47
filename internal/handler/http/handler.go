package http

import (
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
)

// Handler serves the movie REST API. Routes are registered by [Handler.Init].
type Handler struct {
	movies  service.MovieService
	appInfo service.AppInfoService

	logger *logger.Logger
}

// NewHandler takes the movie and app info services out of services. The
// movie service is expected to already carry validation.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		movies:  services.MovieService,
		appInfo: services.AppInfoService,
		logger:  logger,
	}
}
