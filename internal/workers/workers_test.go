// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
)

// blockingWorker считает запуски и ждёт отмены контекста.
type blockingWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.started.Add(1)
	<-ctx.Done()
	b.stopped.Add(1)
}

func TestNewWorkers_SkipsNil(t *testing.T) {
	ws := NewWorkers(logger.Nop(), &blockingWorker{}, nil, &blockingWorker{})

	assert.Equal(t, 2, ws.Len())
}

func TestWorkers_Run_AllWorkersRunConcurrently(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(logger.Nop(), w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1 && w3.started.Load() == 1
	}, time.Second, 5*time.Millisecond, "all workers must be running at once")

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	for i, w := range []*blockingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.stopped.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWorkers(logger.Nop()).Run(context.Background())
	})
}

func TestWorkers_Run_WorkerFunc(t *testing.T) {
	var calls atomic.Int32
	ws := NewWorkers(logger.Nop(), WorkerFunc(func(context.Context) { calls.Add(1) }))

	ws.Run(context.Background())
	ws.Run(context.Background())

	assert.Equal(t, int32(2), calls.Load())
}

func TestWorkers_Run_PanicIsRaisedAfterOthersExit(t *testing.T) {
	other := &blockingWorker{}
	ctx, cancel := context.WithCancel(context.Background())

	ws := NewWorkers(logger.Nop(),
		WorkerFunc(func(context.Context) {
			defer cancel()
			panic("poller exploded")
		}),
		other,
	)

	assert.Panics(t, func() { ws.Run(ctx) })
	assert.Equal(t, int32(1), other.stopped.Load())
}
