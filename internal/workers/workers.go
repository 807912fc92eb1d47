package workers

import (
	"context"

	"github.com/sourcegraph/conc"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers groups workers. Nil entries are skipped.
func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	ws := &Workers{logger: logger}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Run starts every worker concurrently and blocks until all have returned.
// A panicking worker does not take the others down; the panic is re-raised
// after the rest have exited.
func (w *Workers) Run(ctx context.Context) {
	var wg conc.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}

	if recovered := wg.WaitAndRecover(); recovered != nil {
		w.logger.Error().Str("func", "*Workers.Run").Str("panic", recovered.String()).Msg("worker panicked")
		panic(recovered.AsError())
	}
}

// Len reports the number of workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
