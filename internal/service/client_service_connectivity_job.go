package service

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/netstate"
)

const (
	// DefaultConnectivityInterval is the probe period when none is configured.
	DefaultConnectivityInterval = 30 * time.Second

	defaultReplayMaxBackoff = 2 * time.Minute
)

type clientConnectivityJob struct {
	connectivity ClientConnectivityService
	syncService  ClientSyncService
	signal       netstate.Signal

	interval       time.Duration
	initialBackoff time.Duration
	maxBackoff     time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientConnectivityJob creates a job that refreshes connectivity on a
// ticker and on network signal transitions. While the server is reachable and
// operations remain queued it retries SyncPending with exponential backoff
// capped at maxBackoff. The job is idle until Start or Run is called.
func NewClientConnectivityJob(connectivity ClientConnectivityService, syncService ClientSyncService, signal netstate.Signal, interval, maxBackoff time.Duration, logger *logger.Logger) ClientConnectivityJob {
	if interval <= 0 {
		interval = DefaultConnectivityInterval
	}
	if maxBackoff <= 0 {
		maxBackoff = defaultReplayMaxBackoff
	}

	return &clientConnectivityJob{
		connectivity:   connectivity,
		syncService:    syncService,
		signal:         signal,
		interval:       interval,
		initialBackoff: backoff.DefaultInitialInterval,
		maxBackoff:     maxBackoff,
		logger:         logger,
	}
}

// Start implements ClientConnectivityJob.
func (j *clientConnectivityJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	j.mu.Lock()
	if interval > 0 {
		j.interval = interval
	}
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.Run(jobCtx)
	}()
}

// Stop implements ClientConnectivityJob. Safe to call when the job is not
// running.
func (j *clientConnectivityJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements ClientConnectivityJob.
func (j *clientConnectivityJob) Run(ctx context.Context) {
	j.mu.Lock()
	interval := j.interval
	j.mu.Unlock()

	events := make(chan struct{}, 1)
	unsubscribe := j.signal.Subscribe(func(bool) {
		select {
		case events <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = j.initialBackoff
	b.MaxInterval = j.maxBackoff

	t := time.NewTicker(interval)
	defer t.Stop()

	var retry *time.Timer
	retryC := func() <-chan time.Time {
		if retry == nil {
			return nil
		}
		return retry.C
	}
	defer func() {
		if retry != nil {
			retry.Stop()
		}
	}()

	// reschedule arms the retry timer when replay still has work to do and
	// disarms it otherwise.
	reschedule := func(pending bool) {
		if !pending {
			b.Reset()
			if retry != nil {
				retry.Stop()
				retry = nil
			}
			return
		}
		if retry != nil {
			return
		}
		wait := b.NextBackOff()
		if wait == backoff.Stop {
			wait = j.maxBackoff
		}
		retry = time.NewTimer(wait)
	}

	reschedule(j.refresh(ctx))

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			reschedule(j.refresh(ctx))
		case <-events:
			reschedule(j.refresh(ctx))
		case <-retryC():
			retry = nil
			reschedule(j.replay(ctx))
		}
	}
}

// refresh updates connectivity and reports whether replay has work left.
func (j *clientConnectivityJob) refresh(ctx context.Context) bool {
	state := j.connectivity.Refresh(ctx)
	return state.Reachable() && len(j.syncService.PendingOperations(ctx)) > 0
}

// replay runs one pass and reports whether work is left.
func (j *clientConnectivityJob) replay(ctx context.Context) bool {
	if !j.connectivity.State().Reachable() {
		return false
	}

	report, err := j.syncService.SyncPending(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Str("func", "*clientConnectivityJob.replay").Int("remaining", report.Remaining).Msg("replay retry failed")
	}

	return len(j.syncService.PendingOperations(ctx)) > 0
}
