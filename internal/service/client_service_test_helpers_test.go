package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/mock"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// switchableConnectivity: ConnectivityReader, которым управляет тест
type switchableConnectivity struct {
	reachable atomic.Bool
}

func (c *switchableConnectivity) State() models.ConnectivityState {
	r := c.reachable.Load()
	return models.ConnectivityState{NetworkReachable: r, ServerReachable: r}
}

type engine struct {
	movies  *clientMovieService
	sync    *clientSyncService
	cache   store.MovieCache
	adapter *mock.MockServerAdapter
	conn    *switchableConnectivity
}

// newTestEngine собирает движок на настоящем in-memory кэше и мок-адаптере
func newTestEngine(t *testing.T, reachable bool) *engine {
	t.Helper()
	ctrl := gomock.NewController(t)

	cache := store.NewMovieCache(store.NewMemoryKeyValueStore(), "movies_cache", "offline_movie_operations", logger.Nop())
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	conn := &switchableConnectivity{}
	conn.reachable.Store(reachable)

	movies := NewClientMovieService(cache, serverAdapter, conn, validators.NewMovieValidator(), logger.Nop()).(*clientMovieService)
	syncSvc := NewClientSyncService(cache, serverAdapter, movies, logger.Nop()).(*clientSyncService)

	return &engine{movies: movies, sync: syncSvc, cache: cache, adapter: serverAdapter, conn: conn}
}

// seed записывает снимок напрямую в кэш
func (e *engine) seed(t *testing.T, movies ...models.Movie) {
	t.Helper()
	_, err := e.cache.Mutate(context.Background(), func(s *store.CacheState) error {
		s.Movies = append(s.Movies, movies...)
		return nil
	})
	require.NoError(t, err)
}

func (e *engine) snapshot() []models.Movie {
	return e.cache.Snapshot(context.Background())
}

func (e *engine) queue() []models.PendingOperation {
	return e.cache.PendingOperations(context.Background())
}

func validFields(title string) models.MovieFields {
	return models.MovieFields{
		Title:  title,
		Year:   2024,
		Genre:  "Drama",
		Rating: 7,
		Review: "ok",
		Image:  "http://x/y.jpg",
	}
}

func serverMovie(id string, title string) models.Movie {
	return models.NewMovie(models.MovieID(id), validFields(title))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 5*time.Millisecond)
}
