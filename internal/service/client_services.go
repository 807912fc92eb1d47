package service

import (
	"context"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter"
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/netstate"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
)

type ClientServices struct {
	MovieService        ClientMovieService
	SyncService         ClientSyncService
	ConnectivityService ClientConnectivityService
	ConnectivityJob     ClientConnectivityJob
}

// NewClientServices wires the sync engine. Replay is triggered on every
// reconnect transition.
func NewClientServices(cache store.MovieCache, serverAdapter adapter.ServerAdapter, signal netstate.Signal, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	connectivity := NewClientConnectivityService(serverAdapter, signal, logger)
	movies := NewClientMovieService(cache, serverAdapter, connectivity, validators.NewMovieValidator(), logger)
	syncSvc := NewClientSyncService(cache, serverAdapter, movies, logger)

	connectivity.OnReconnect(func(ctx context.Context) {
		_, _ = syncSvc.SyncPending(ctx)
	})

	return &ClientServices{
		MovieService:        movies,
		SyncService:         syncSvc,
		ConnectivityService: connectivity,
		ConnectivityJob:     NewClientConnectivityJob(connectivity, syncSvc, signal, cfg.ProbeInterval, cfg.ReplayMaxBackoff, logger),
	}
}
