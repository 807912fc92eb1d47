// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// ── пустая очередь ──────────────────────────────────────────────────────────

func TestSyncPending_EmptyQueueIsNoop(t *testing.T) {
	e := newTestEngine(t, true)

	// два прогона подряд: ни одного обращения к серверу
	for range 2 {
		report, err := e.sync.SyncPending(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.SyncReport{}, report)
	}
}

// ── сценарии ────────────────────────────────────────────────────────────────

func TestSyncPending_OfflineDeleteThenReplay(t *testing.T) {
	e := newTestEngine(t, false)
	ctx := context.Background()
	e.seed(t, serverMovie("4", "keep"), serverMovie("5", "drop"))

	_, err := e.movies.Delete(ctx, "5")
	require.NoError(t, err)
	_, found := findMovie(e.snapshot(), "5")
	assert.False(t, found)

	e.conn.reachable.Store(true)
	gomock.InOrder(
		e.adapter.EXPECT().Delete(gomock.Any(), models.MovieID("5")).Return(nil),
		e.adapter.EXPECT().List(gomock.Any()).Return([]models.Movie{serverMovie("4", "keep")}, nil),
	)

	report, err := e.sync.SyncPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Replayed: 1}, report)
	assert.Empty(t, e.queue())
	_, found = findMovie(e.snapshot(), "5")
	assert.False(t, found)
}

func TestSyncPending_ConfirmsEveryRecord(t *testing.T) {
	e := newTestEngine(t, false)
	ctx := context.Background()
	e.seed(t, serverMovie("1", "A"))

	created, err := e.movies.Create(ctx, validFields("new"))
	require.NoError(t, err)
	_, err = e.movies.Update(ctx, "1", validFields("A2"))
	require.NoError(t, err)

	e.conn.reachable.Store(true)
	gomock.InOrder(
		e.adapter.EXPECT().Create(gomock.Any(), validFields("new")).Return(serverMovie("60", "new"), nil),
		e.adapter.EXPECT().Update(gomock.Any(), models.MovieID("1"), validFields("A2")).Return(serverMovie("1", "A2"), nil),
		e.adapter.EXPECT().List(gomock.Any()).Return([]models.Movie{serverMovie("1", "A2"), serverMovie("60", "new")}, nil),
	)

	report, err := e.sync.SyncPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Replayed)
	assert.Empty(t, e.queue())

	snap := e.snapshot()
	require.Len(t, snap, 2)
	for _, m := range snap {
		assert.False(t, m.Unconfirmed, "movie %s still unconfirmed", m.ID)
		assert.NotEqual(t, created.ID, m.ID)
	}
}

// ── подмена временных id ────────────────────────────────────────────────────

func TestSyncPending_RemapsTemporaryIDs(t *testing.T) {
	e := newTestEngine(t, false)
	ctx := context.Background()

	created, err := e.movies.Create(ctx, validFields("draft"))
	require.NoError(t, err)
	_, err = e.movies.Update(ctx, created.ID, validFields("final"))
	require.NoError(t, err)

	e.conn.reachable.Store(true)
	gomock.InOrder(
		e.adapter.EXPECT().Create(gomock.Any(), validFields("draft")).Return(serverMovie("77", "draft"), nil),
		e.adapter.EXPECT().Update(gomock.Any(), models.MovieID("77"), validFields("final")).Return(serverMovie("77", "final"), nil),
		e.adapter.EXPECT().List(gomock.Any()).Return([]models.Movie{serverMovie("77", "final")}, nil),
	)

	report, err := e.sync.SyncPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Replayed)
	assert.Equal(t, []models.Movie{serverMovie("77", "final")}, e.snapshot())
}

func TestSyncPending_DeleteOfUnsyncedCreate(t *testing.T) {
	e := newTestEngine(t, false)
	ctx := context.Background()

	created, err := e.movies.Create(ctx, validFields("oops"))
	require.NoError(t, err)
	_, err = e.movies.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, e.snapshot())

	e.conn.reachable.Store(true)
	gomock.InOrder(
		e.adapter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(serverMovie("80", "oops"), nil),
		e.adapter.EXPECT().Delete(gomock.Any(), models.MovieID("80")).Return(nil),
		e.adapter.EXPECT().List(gomock.Any()).Return([]models.Movie{}, nil),
	)

	report, err := e.sync.SyncPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Replayed)
	assert.Empty(t, e.snapshot())
	assert.Empty(t, e.queue())
}

// операция, добавленная во время прогона, не отправляется, но получает новый id
func TestSyncPending_OperationsAppendedMidPassWait(t *testing.T) {
	e := newTestEngine(t, false)
	ctx := context.Background()

	created, err := e.movies.Create(ctx, validFields("draft"))
	require.NoError(t, err)

	e.conn.reachable.Store(true)
	e.adapter.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, f models.MovieFields) (models.Movie, error) {
			// temporary ids always take the offline path
			_, err := e.movies.Update(ctx, created.ID, validFields("edited"))
			require.NoError(t, err)
			return models.NewMovie("90", f), nil
		})

	report, err := e.sync.SyncPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Replayed: 1, Remaining: 1}, report)

	queue := e.queue()
	require.Len(t, queue, 1)
	assert.Equal(t, models.OperationUpdate, queue[0].Kind)
	assert.Equal(t, models.MovieID("90"), queue[0].TargetID)

	// local edit stays visible under the server id
	snap := e.snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, models.MovieID("90"), snap[0].ID)
	assert.Equal(t, "edited", snap[0].Title)
	assert.True(t, snap[0].Unconfirmed)
}

// ── отказы ──────────────────────────────────────────────────────────────────

func TestSyncPending_StopsAtFirstTransportFailure(t *testing.T) {
	e := newTestEngine(t, false)
	ctx := context.Background()
	e.seed(t, serverMovie("1", "A"), serverMovie("2", "B"))

	_, err := e.movies.Delete(ctx, "1")
	require.NoError(t, err)
	_, err = e.movies.Delete(ctx, "2")
	require.NoError(t, err)

	e.conn.reachable.Store(true)
	e.adapter.EXPECT().Delete(gomock.Any(), models.MovieID("1")).
		Return(fmt.Errorf("%w: connection refused", adapter.ErrUnavailable))

	report, err := e.sync.SyncPending(ctx)

	require.ErrorIs(t, err, ErrReplayInterrupted)
	assert.ErrorIs(t, err, adapter.ErrUnavailable)
	assert.Equal(t, models.SyncReport{Remaining: 2}, report)
	assert.Len(t, e.queue(), 2)
}

func TestSyncPending_RejectedCreateIsDropped(t *testing.T) {
	e := newTestEngine(t, false)
	ctx := context.Background()
	e.seed(t, serverMovie("5", "A"))

	_, err := e.movies.Create(ctx, validFields("bad on server"))
	require.NoError(t, err)
	_, err = e.movies.Delete(ctx, "5")
	require.NoError(t, err)

	e.conn.reachable.Store(true)
	rejection := fmt.Errorf("%w: %w", adapter.ErrBadRequest, &validators.ValidationError{Messages: []string{"Invalid year"}})
	gomock.InOrder(
		e.adapter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Movie{}, rejection),
		e.adapter.EXPECT().Delete(gomock.Any(), models.MovieID("5")).Return(nil),
		e.adapter.EXPECT().List(gomock.Any()).Return([]models.Movie{}, nil),
	)

	report, err := e.sync.SyncPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Replayed: 1, Rejected: 1}, report)
	assert.Empty(t, e.queue())
	assert.Empty(t, e.snapshot())
}

// отклонённый DELETE не возвращает запись в кэш сам; её вернёт следующий List
func TestSyncPending_RejectedDeleteIsNotRestored(t *testing.T) {
	e := newTestEngine(t, false)
	ctx := context.Background()
	e.seed(t, serverMovie("5", "A"))

	_, err := e.movies.Delete(ctx, "5")
	require.NoError(t, err)

	e.conn.reachable.Store(true)
	gomock.InOrder(
		e.adapter.EXPECT().Delete(gomock.Any(), models.MovieID("5")).Return(adapter.ErrConflict),
		e.adapter.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Movie, error) {
			_, found := findMovie(e.snapshot(), "5")
			assert.False(t, found, "dropped delete must not re-insert the record")
			return []models.Movie{serverMovie("5", "A")}, nil
		}),
	)

	report, err := e.sync.SyncPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Rejected: 1}, report)
	assert.Empty(t, e.queue())

	movie, found := findMovie(e.snapshot(), "5")
	require.True(t, found)
	assert.False(t, movie.Unconfirmed)
}

func TestSyncPending_UpdateOfRejectedCreateIsDropped(t *testing.T) {
	e := newTestEngine(t, false)
	ctx := context.Background()

	created, err := e.movies.Create(ctx, validFields("x"))
	require.NoError(t, err)
	_, err = e.movies.Update(ctx, created.ID, validFields("y"))
	require.NoError(t, err)

	e.conn.reachable.Store(true)
	gomock.InOrder(
		e.adapter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Movie{}, adapter.ErrConflict),
		e.adapter.EXPECT().List(gomock.Any()).Return([]models.Movie{}, nil),
	)

	report, err := e.sync.SyncPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Rejected: 2}, report)
	assert.Empty(t, e.queue())
}

// ── single flight ───────────────────────────────────────────────────────────

func TestSyncPending_OverlappingCallReturnsImmediately(t *testing.T) {
	e := newTestEngine(t, false)
	ctx := context.Background()
	e.seed(t, serverMovie("1", "A"))
	_, err := e.movies.Delete(ctx, "1")
	require.NoError(t, err)

	e.conn.reachable.Store(true)
	entered := make(chan struct{})
	release := make(chan struct{})
	e.adapter.EXPECT().Delete(gomock.Any(), models.MovieID("1")).
		DoAndReturn(func(context.Context, models.MovieID) error {
			close(entered)
			<-release
			return nil
		}).Times(1)
	e.adapter.EXPECT().List(gomock.Any()).Return([]models.Movie{}, nil)

	done := make(chan models.SyncReport)
	go func() {
		report, err := e.sync.SyncPending(ctx)
		assert.NoError(t, err)
		done <- report
	}()

	<-entered
	report, err := e.sync.SyncPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{}, report)

	close(release)
	assert.Equal(t, models.SyncReport{Replayed: 1}, <-done)
}

func TestPendingOperations(t *testing.T) {
	e := newTestEngine(t, false)
	e.seed(t, serverMovie("1", "A"))

	_, err := e.movies.Delete(context.Background(), "1")
	require.NoError(t, err)

	ops := e.sync.PendingOperations(context.Background())
	require.Len(t, ops, 1)
	assert.Equal(t, models.MovieID("1"), ops[0].TargetID)
}
