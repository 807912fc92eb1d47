package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-movie-keeper/internal/app"
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService fails with [ErrVersionIsNotSpecified] when cfg carries no
// version.
func NewAppInfoService(cfg *config.ServerConfig, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("movie server version")

	return &appInfoService{
		version: version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}

func (s *appInfoService) GetStatus(ctx context.Context) models.StatusResponse {
	return models.StatusResponse{Message: app.MsgAPIRunning}
}
