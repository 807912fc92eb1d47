package handler

import (
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/handler/http"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
)

// Handlers groups the transports the movie server exposes. Only HTTP exists.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler over services. It fails when there is
// nothing to serve on or nothing to serve.
func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, errNoServices
	}
	if cfg == nil || cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Str("func", "NewHandlers").Str("address", cfg.HTTPAddress).Msg("creating http handler")

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
