package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type clientMovieService struct {
	cache        store.MovieCache
	adapter      adapter.ServerAdapter
	connectivity ConnectivityReader
	validator    validators.Validator

	logger *logger.Logger
}

// NewClientMovieService builds the offline-first movie service on top of the
// local cache and the server adapter. connectivity decides whether the server
// is tried at all.
func NewClientMovieService(cache store.MovieCache, serverAdapter adapter.ServerAdapter, connectivity ConnectivityReader, validator validators.Validator, logger *logger.Logger) ClientMovieService {
	return &clientMovieService{
		cache:        cache,
		adapter:      serverAdapter,
		connectivity: connectivity,
		validator:    validator,
		logger:       logger,
	}
}

func (s *clientMovieService) List(ctx context.Context) []models.Movie {
	if !s.connectivity.State().Reachable() {
		return s.cache.Snapshot(ctx)
	}

	remote, err := s.adapter.List(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*clientMovieService.List").Msg("remote list failed, serving cached snapshot")
		return s.cache.Snapshot(ctx)
	}

	state, err := s.cache.Mutate(ctx, func(state *store.CacheState) error {
		state.Movies = rebase(remote, state.Queue)
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*clientMovieService.List").Msg("failed to persist snapshot")
		return rebase(remote, s.cache.PendingOperations(ctx))
	}

	return state.Movies
}

func (s *clientMovieService) Get(ctx context.Context, id models.MovieID) (models.Movie, error) {
	movie, ok := findMovie(s.List(ctx), id)
	if !ok {
		return models.Movie{}, fmt.Errorf("%w: %s", ErrMovieNotFound, id)
	}
	return movie, nil
}

func (s *clientMovieService) Create(ctx context.Context, fields models.MovieFields) (models.Movie, error) {
	log := s.logger

	if err := s.validator.Validate(ctx, fields); err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrMovieRejected, err)
	}

	if s.connectivity.State().Reachable() {
		created, err := s.adapter.Create(ctx, fields)
		mapped, decided := mapAdapterError(err)
		if err == nil {
			if _, err = s.cache.Mutate(ctx, func(state *store.CacheState) error {
				state.Movies = putMovie(state.Movies, created.ID, created)
				return nil
			}); err != nil {
				log.Err(err).Str("func", "*clientMovieService.Create").Msg("movie created on server but cache update failed")
			}
			return created, nil
		}
		if decided {
			return models.Movie{}, mapped
		}
		log.Warn().Err(err).Str("func", "*clientMovieService.Create").Msg("remote create failed, saving locally")
	}

	movie := unconfirmed(models.NewTemporaryMovieID(), fields)
	_, err := s.cache.Mutate(ctx, func(state *store.CacheState) error {
		state.Movies = append(state.Movies, movie)
		state.Queue = append(state.Queue, models.NewCreateOperation(movie.ID, fields))
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*clientMovieService.Create").Msg("failed to save movie locally")
		return models.Movie{}, fmt.Errorf("save movie locally: %w", err)
	}

	return movie, nil
}

func (s *clientMovieService) Update(ctx context.Context, id models.MovieID, fields models.MovieFields) (models.Movie, error) {
	log := s.logger

	if err := s.validator.Validate(ctx, fields); err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrMovieRejected, err)
	}

	if s.canWriteThrough(ctx, id) {
		updated, err := s.adapter.Update(ctx, id, fields)
		mapped, decided := mapAdapterError(err)
		switch {
		case err == nil:
			if _, err = s.cache.Mutate(ctx, func(state *store.CacheState) error {
				state.Movies = putMovie(state.Movies, id, updated)
				return nil
			}); err != nil {
				log.Err(err).Str("func", "*clientMovieService.Update").Msg("movie updated on server but cache update failed")
			}
			return updated, nil
		case decided:
			return models.Movie{}, mapped
		}
		log.Warn().Err(err).Str("func", "*clientMovieService.Update").Str("id", id.String()).Msg("remote update failed, saving locally")
	}

	movie := unconfirmed(id, fields)
	_, err := s.cache.Mutate(ctx, func(state *store.CacheState) error {
		i := indexOfMovie(state.Movies, id)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrMovieNotFound, id)
		}
		state.Movies[i] = movie
		state.Queue = append(state.Queue, models.NewUpdateOperation(id, fields))
		return nil
	})
	if err != nil {
		return models.Movie{}, err
	}

	return movie, nil
}

func (s *clientMovieService) Delete(ctx context.Context, id models.MovieID) (models.DeleteResult, error) {
	log := s.logger

	if s.canWriteThrough(ctx, id) {
		err := s.adapter.Delete(ctx, id)
		if err == nil {
			if _, err = s.cache.Mutate(ctx, func(state *store.CacheState) error {
				state.Movies = removeMovie(state.Movies, id)
				return nil
			}); err != nil {
				log.Err(err).Str("func", "*clientMovieService.Delete").Msg("movie deleted on server but cache update failed")
			}
			return models.DeleteResult{ID: id, Confirmed: true}, nil
		}
		log.Warn().Err(err).Str("func", "*clientMovieService.Delete").Str("id", id.String()).Msg("remote delete failed, deleting locally")
	}

	_, err := s.cache.Mutate(ctx, func(state *store.CacheState) error {
		state.Movies = removeMovie(state.Movies, id)
		state.Queue = append(state.Queue, models.NewDeleteOperation(id))
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*clientMovieService.Delete").Msg("failed to queue delete")
		return models.DeleteResult{}, fmt.Errorf("queue delete: %w", err)
	}

	return models.DeleteResult{ID: id, Confirmed: false}, nil
}

// canWriteThrough reports whether a change to id may go straight to the
// server. Temporary ids and ids with queued operations go through the queue
// so replay keeps the order of writes.
func (s *clientMovieService) canWriteThrough(ctx context.Context, id models.MovieID) bool {
	if id.IsTemporary() || !s.connectivity.State().Reachable() {
		return false
	}
	if hasQueuedFor(s.cache.PendingOperations(ctx), id) {
		s.logger.Debug().Str("func", "*clientMovieService.canWriteThrough").Str("id", id.String()).Msg("movie has queued changes, queueing behind them")
		return false
	}
	return true
}
