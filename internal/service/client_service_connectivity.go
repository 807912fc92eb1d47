package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/netstate"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// minRefreshInterval bounds how often Refresh may probe the server.
const minRefreshInterval = time.Second

type clientConnectivityService struct {
	adapter adapter.ServerAdapter
	signal  netstate.Signal
	limiter *rate.Limiter

	mu          sync.Mutex
	state       models.ConnectivityState
	onReconnect []func(ctx context.Context)

	logger *logger.Logger
}

// NewClientConnectivityService creates the single owner of the client's
// connectivity state. The initial state is unreachable until the first
// Refresh.
func NewClientConnectivityService(serverAdapter adapter.ServerAdapter, signal netstate.Signal, logger *logger.Logger) ClientConnectivityService {
	return &clientConnectivityService{
		adapter: serverAdapter,
		signal:  signal,
		limiter: rate.NewLimiter(rate.Every(minRefreshInterval), 1),
		logger:  logger,
	}
}

func (s *clientConnectivityService) State() models.ConnectivityState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *clientConnectivityService) OnReconnect(fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReconnect = append(s.onReconnect, fn)
}

func (s *clientConnectivityService) Refresh(ctx context.Context) models.ConnectivityState {
	log := s.logger

	if err := s.limiter.Wait(ctx); err != nil {
		return s.State()
	}

	next := models.ConnectivityState{NetworkReachable: s.signal.IsUp()}
	if next.NetworkReachable {
		err := s.adapter.Ping(ctx)
		next.ServerReachable = err == nil
		if err != nil {
			log.Debug().Err(err).Str("func", "*clientConnectivityService.Refresh").Msg("server probe failed")
		}
	}

	s.mu.Lock()
	prev := s.state
	s.state = next
	reconnected := !prev.Reachable() && next.Reachable()
	callbacks := slices.Clone(s.onReconnect)
	s.mu.Unlock()

	if prev != next {
		log.Info().
			Str("func", "*clientConnectivityService.Refresh").
			Str("from", prev.String()).
			Str("to", next.String()).
			Msg("connectivity changed")
	}

	if reconnected {
		for _, fn := range callbacks {
			fn(ctx)
		}
	}

	return next
}
