package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/handler"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/server"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.Banner())

	log := logger.NewLogger("movie-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Version == "" {
		cfg.Version = buildInfo.Version()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
