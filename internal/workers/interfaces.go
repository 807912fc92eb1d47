// Package workers runs the client's background workers side by side.
//
// A Worker blocks in Run until its context is done. Workers starts each one
// on its own goroutine and waits for all of them, so cancelling the shared
// context is the only shutdown signal.
package workers

import "context"

// Worker is a long-running background task. Run must return once ctx is
// done.
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
