// Package task runs background work with a cancellation token and a
// one-shot completion handle.
//
// Cancellation is advisory: Cancel cancels the task's context and returns
// immediately. The work function is expected to observe ctx.Done().
package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/searchfield/pkg/errors"
)

// Func is the work run by a task. It must call done.Done exactly once when
// it finishes, whether or not it succeeded.
type Func func(ctx context.Context, done *Completion)

// Task is a running background invocation.
type Task struct {
	id         uuid.UUID
	ctx        context.Context
	cancel     context.CancelFunc
	exited     chan struct{}
	completion *Completion
	started    time.Time
}

// Spawn runs fn on its own goroutine with a context derived from parent.
// A panic in fn is recovered and reported through the errors package;
// it does not call done.
func Spawn(parent context.Context, done *Completion, fn Func) *Task {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	t := &Task{
		id:         uuid.New(),
		ctx:        ctx,
		cancel:     cancel,
		exited:     make(chan struct{}),
		completion: done,
		started:    time.Now(),
	}
	Logger().Debug("task started", "task", t.id)
	go t.run(fn)
	return t
}

func (t *Task) run(fn Func) {
	defer close(t.exited)
	defer errors.Recover("task.run " + t.id.String())
	if fn == nil {
		return
	}
	fn(t.ctx, t.completion)
	Logger().Debug("task returned", "task", t.id,
		"elapsed", time.Since(t.started), "cancelled", t.ctx.Err() != nil)
}

// ID returns the task's unique identifier.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Completion returns the handle passed to the work function.
func (t *Task) Completion() *Completion {
	return t.completion
}

// Cancel requests cancellation and returns without waiting.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	if t.ctx.Err() == nil {
		Logger().Debug("task cancelled", "task", t.id)
	}
	t.cancel()
}

// Cancelled reports whether Cancel was called or the parent context ended.
func (t *Task) Cancelled() bool {
	return t.ctx.Err() != nil
}

// Wait blocks until the work function returns or ctx ends.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
