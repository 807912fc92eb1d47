package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter"
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/netstate"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/tui"
	"github.com/MKhiriev/go-movie-keeper/internal/workers"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// App is the assembled movie client.
type App struct {
	connectivity service.ClientConnectivityService
	ui           UI
	workers      *workers.Workers
	closer       io.Closer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the local cache, connects the server adapter and builds the
// sync engine and UI on top of them.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	poller := netstate.NewInterfacePoller(cfg.Workers.NetworkPollInterval, logger)
	services := service.NewClientServices(storages.MovieCache, serverAdapter, poller, cfg.Workers, logger)

	return newApp(
		services.ConnectivityService,
		tui.New(services, buildInfo, logger),
		workers.NewWorkers(logger, poller, services.ConnectivityJob),
		storages,
		logger,
	), nil
}

func newApp(connectivity service.ClientConnectivityService, ui UI, ws *workers.Workers, closer io.Closer, logger *logger.Logger) *App {
	return &App{
		connectivity: connectivity,
		ui:           ui,
		workers:      ws,
		closer:       closer,
		logger:       logger,
	}
}

// Run probes connectivity once, starts the background workers and blocks in
// the UI. Workers are stopped and the cache is closed when the UI exits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	state := a.connectivity.Refresh(ctx)
	a.logger.Info().Str("func", "*App.Run").Str("state", state.String()).Msg("initial connectivity")

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.workers.Run(ctx)
	}()

	uiErr := a.ui.Run(ctx)

	cancel()
	<-done

	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("failed to close local storage")
	}

	if uiErr != nil {
		return fmt.Errorf("ui: %w", uiErr)
	}

	a.logger.Info().Str("func", "*App.Run").Msg("client stopped")
	return nil
}
