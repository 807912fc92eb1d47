package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/client"
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("movie-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("movie-client", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
