// Package jobs runs long work (loading or saving a game) off the tick thread.
//
// A screen starts a job and polls it from Think. The job reports back only
// through atomic status and error slots, so it never touches screen state;
// a screen destroyed before completion calls Discard and the result is dropped.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/oxport/menustack/pkg/menustack/internal"
)

// Status is the state of a job as seen by the polling screen.
type Status int32

const (
	StatusPending Status = iota
	StatusDone
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Runner owns the goroutines of started jobs so shutdown can wait for them.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *slog.Logger
}

// NewRunner creates a runner whose jobs see ctx (cancelled by Shutdown).
func NewRunner(ctx context.Context, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = internal.GetInternalLogger()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Runner{ctx: ctx, cancel: cancel, logger: logger}
}

// Shutdown cancels the runner's context and waits for running jobs to return.
func (r *Runner) Shutdown() {
	r.cancel()
	r.wg.Wait()
}

// Job is a handle to background work producing a T.
type Job[T any] struct {
	name      string
	status    atomic.Int32
	err       atomic.Error
	discarded atomic.Bool
	done      chan struct{}

	// result is written once by the job goroutine before status leaves
	// StatusPending, and only read after Poll observed that.
	result T
}

// Go starts fn on its own goroutine and returns its handle immediately.
// A panic in fn is recovered and reported as a failure.
func Go[T any](r *Runner, name string, fn func(ctx context.Context) (T, error)) *Job[T] {
	j := &Job[T]{name: name, done: make(chan struct{})}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer close(j.done)

		result, err := j.run(r.ctx, fn)

		if j.discarded.Load() {
			r.logger.Debug("job finished after discard", "job", name, "error", err)
			return
		}

		if err != nil {
			r.logger.Warn("job failed", "job", name, "error", err)
			j.err.Store(err)
			j.status.Store(int32(StatusFailed))
			return
		}

		j.result = result
		j.status.Store(int32(StatusDone))
		r.logger.Debug("job done", "job", name)
	}()

	return j
}

func (j *Job[T]) run(ctx context.Context, fn func(ctx context.Context) (T, error)) (result T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("job %s panicked: %v", j.name, p)
		}
	}()
	return fn(ctx)
}

// Name returns the name given to Go.
func (j *Job[T]) Name() string {
	return j.name
}

// Poll returns the current status without blocking.
func (j *Job[T]) Poll() Status {
	return Status(j.status.Load())
}

// Result returns the job's value and error. Only meaningful once Poll
// reports StatusDone or StatusFailed.
func (j *Job[T]) Result() (T, error) {
	switch j.Poll() {
	case StatusDone:
		return j.result, nil
	case StatusFailed:
		var zero T
		return zero, j.err.Load()
	default:
		var zero T
		return zero, fmt.Errorf("job %s: still pending", j.name)
	}
}

// Discard marks the job as abandoned. The goroutine keeps running to
// completion but its outcome is dropped and Poll stays pending.
func (j *Job[T]) Discard() {
	j.discarded.Store(true)
}

// Discarded reports whether Discard was called.
func (j *Job[T]) Discarded() bool {
	return j.discarded.Load()
}

// Done is closed when the goroutine returns, whether or not the job was discarded.
// For shutdown and tests; screens poll instead of waiting on it.
func (j *Job[T]) Done() <-chan struct{} {
	return j.done
}
