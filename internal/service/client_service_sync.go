package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// errRejected marks a queued operation the server can never accept.
var errRejected = errors.New("operation rejected")

// snapshotRefresher reloads the catalog from the server.
type snapshotRefresher interface {
	List(ctx context.Context) []models.Movie
}

type clientSyncService struct {
	cache     store.MovieCache
	adapter   adapter.ServerAdapter
	refresher snapshotRefresher

	// held for the whole pass, acquired with TryLock
	running sync.Mutex

	logger *logger.Logger
}

// NewClientSyncService creates the replay side of the client. refresher is
// called after a pass that emptied the queue.
func NewClientSyncService(cache store.MovieCache, serverAdapter adapter.ServerAdapter, refresher snapshotRefresher, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		cache:     cache,
		adapter:   serverAdapter,
		refresher: refresher,
		logger:    logger,
	}
}

func (s *clientSyncService) PendingOperations(ctx context.Context) []models.PendingOperation {
	return s.cache.PendingOperations(ctx)
}

func (s *clientSyncService) SyncPending(ctx context.Context) (models.SyncReport, error) {
	if !s.running.TryLock() {
		s.logger.Debug().Str("func", "*clientSyncService.SyncPending").Msg("replay already running")
		return models.SyncReport{}, nil
	}
	defer s.running.Unlock()

	log := s.logger

	// operations enqueued after this point wait for the next pass
	queue := s.cache.PendingOperations(ctx)
	if len(queue) == 0 {
		return models.SyncReport{}, nil
	}

	log.Info().Str("func", "*clientSyncService.SyncPending").Int("queued", len(queue)).Msg("replaying pending operations")

	var (
		report      models.SyncReport
		interrupted error
		remapped    = make(map[models.MovieID]models.MovieID)
	)

	for _, op := range queue {
		if serverID, ok := remapped[op.TargetID]; ok {
			op.TargetID = serverID
		}

		err := s.replay(ctx, op, remapped)
		switch {
		case err == nil:
			report.Replayed++
		case errors.Is(err, errRejected):
			report.Rejected++
			log.Warn().Err(err).
				Str("func", "*clientSyncService.SyncPending").
				Str("op", op.ID).
				Str("kind", string(op.Kind)).
				Msg("server rejected queued operation, dropping it")
		default:
			interrupted = err
		}
		if interrupted != nil {
			break
		}
	}

	report.Remaining = len(s.cache.PendingOperations(ctx))

	log.Info().
		Str("func", "*clientSyncService.SyncPending").
		Int("replayed", report.Replayed).
		Int("rejected", report.Rejected).
		Int("remaining", report.Remaining).
		Msg("replay pass finished")

	if interrupted != nil {
		log.Warn().Err(interrupted).Str("func", "*clientSyncService.SyncPending").Msg("replay stopped on transport failure")
		return report, fmt.Errorf("%w: %w", ErrReplayInterrupted, interrupted)
	}

	if report.Remaining == 0 && s.refresher != nil {
		s.refresher.List(ctx)
	}

	return report, nil
}

// replay sends one operation. It returns nil on success, an error wrapping
// errRejected when the operation was dropped, or the transport error that
// should stop the pass.
func (s *clientSyncService) replay(ctx context.Context, op models.PendingOperation, remapped map[models.MovieID]models.MovieID) error {
	switch op.Kind {
	case models.OperationCreate:
		return s.replayCreate(ctx, op, remapped)
	case models.OperationUpdate:
		return s.replayUpdate(ctx, op)
	case models.OperationDelete:
		return s.replayDelete(ctx, op)
	}

	return s.drop(ctx, op, fmt.Errorf("%w: unknown kind %q", errRejected, op.Kind))
}

func (s *clientSyncService) replayCreate(ctx context.Context, op models.PendingOperation, remapped map[models.MovieID]models.MovieID) error {
	if op.Payload == nil {
		return s.drop(ctx, op, fmt.Errorf("%w: create without payload", errRejected))
	}

	created, err := s.adapter.Create(ctx, *op.Payload)
	if err != nil {
		if adapter.IsRejected(err) {
			return s.drop(ctx, op, fmt.Errorf("%w: %w", errRejected, err))
		}
		return err
	}

	remapped[op.TempID] = created.ID

	_, err = s.cache.Mutate(ctx, func(state *store.CacheState) error {
		state.Queue = removeOperation(state.Queue, op.ID)
		remapTarget(state.Queue, op.TempID, created.ID)
		state.Movies = confirm(state.Movies, state.Queue, op.TempID, created)
		return nil
	})

	return s.persisted(err, op)
}

func (s *clientSyncService) replayUpdate(ctx context.Context, op models.PendingOperation) error {
	if op.Payload == nil {
		return s.drop(ctx, op, fmt.Errorf("%w: update without payload", errRejected))
	}
	if op.TargetID.IsTemporary() {
		// its CREATE never reached the server
		return s.drop(ctx, op, fmt.Errorf("%w: target %s was never created", errRejected, op.TargetID))
	}

	updated, err := s.adapter.Update(ctx, op.TargetID, *op.Payload)
	if err != nil {
		if adapter.IsRejected(err) {
			return s.drop(ctx, op, fmt.Errorf("%w: %w", errRejected, err))
		}
		return err
	}

	_, err = s.cache.Mutate(ctx, func(state *store.CacheState) error {
		state.Queue = removeOperation(state.Queue, op.ID)
		state.Movies = confirm(state.Movies, state.Queue, op.TargetID, updated)
		return nil
	})

	return s.persisted(err, op)
}

func (s *clientSyncService) replayDelete(ctx context.Context, op models.PendingOperation) error {
	if !op.TargetID.IsTemporary() {
		if err := s.adapter.Delete(ctx, op.TargetID); err != nil {
			if adapter.IsRejected(err) {
				return s.drop(ctx, op, fmt.Errorf("%w: %w", errRejected, err))
			}
			return err
		}
	}

	_, err := s.cache.Mutate(ctx, func(state *store.CacheState) error {
		state.Queue = removeOperation(state.Queue, op.ID)
		state.Movies = removeMovie(state.Movies, op.TargetID)
		return nil
	})

	return s.persisted(err, op)
}

// drop removes a rejected operation. A rejected CREATE takes its local
// record with it.
func (s *clientSyncService) drop(ctx context.Context, op models.PendingOperation, reason error) error {
	_, err := s.cache.Mutate(ctx, func(state *store.CacheState) error {
		state.Queue = removeOperation(state.Queue, op.ID)
		if op.Kind == models.OperationCreate {
			state.Movies = removeMovie(state.Movies, op.TempID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("drop operation %s: %w", op.ID, err)
	}

	return reason
}

// persisted turns a failed cache write after a successful remote call into a
// pass-stopping error; the operation stays queued and will be sent again.
func (s *clientSyncService) persisted(err error, op models.PendingOperation) error {
	if err == nil {
		return nil
	}
	s.logger.Err(err).Str("func", "*clientSyncService.persisted").Str("op", op.ID).Msg("replayed operation could not be removed from the queue")
	return fmt.Errorf("dequeue operation %s: %w", op.ID, err)
}
