package searchfield

import (
	"context"

	"github.com/go-drift/searchfield/pkg/task"
)

// Listener receives activation and cancellation of the search box.
//
// OnActivated runs on its own goroutine. It must call done.Done once when
// the search finishes, and should return early when ctx is cancelled.
// OnCancelled runs on the UI thread when the user collapses the box.
type Listener interface {
	OnActivated(ctx context.Context, done *task.Completion)
	OnCancelled()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are no-ops.
type ListenerFuncs struct {
	Activated func(ctx context.Context, done *task.Completion)
	Cancelled func()
}

// OnActivated implements Listener.
func (l ListenerFuncs) OnActivated(ctx context.Context, done *task.Completion) {
	if l.Activated != nil {
		l.Activated(ctx, done)
	}
}

// OnCancelled implements Listener.
func (l ListenerFuncs) OnCancelled() {
	if l.Cancelled != nil {
		l.Cancelled()
	}
}
