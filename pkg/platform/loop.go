package platform

import (
	"sync"
	"time"
)

// Loop is a minimal UI-thread run loop.
//
// Post may be called from any goroutine. RunPending must be called from the
// owner thread; it runs callbacks in the order they were posted.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	closed bool
	wake   chan struct{}
}

// NewLoop creates an empty run loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues callback. It returns false if the loop is closed or callback is nil.
func (l *Loop) Post(callback func()) bool {
	if callback == nil {
		return false
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, callback)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// RunPending runs every callback queued so far and returns how many ran.
// Callbacks posted while draining run on the next call.
func (l *Loop) RunPending() int {
	l.mu.Lock()
	pending := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, cb := range pending {
		cb()
	}
	return len(pending)
}

// Pending returns the number of queued callbacks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Wake returns a channel that receives after a Post.
// A host blocking between frames can select on it.
func (l *Loop) Wake() <-chan struct{} {
	return l.wake
}

// WaitPending blocks until at least one callback is queued or timeout
// elapses, and reports whether one is queued. A wake left over from a
// callback that already ran does not end the wait.
func (l *Loop) WaitPending(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for l.Pending() == 0 {
		select {
		case <-l.wake:
		case <-timer.C:
			return l.Pending() > 0
		}
	}
	return true
}

// Register installs the loop as the package dispatcher.
func (l *Loop) Register() {
	RegisterDispatch(l.Post)
}

// Close stops the loop from accepting callbacks and drops any pending ones.
func (l *Loop) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	l.closed = true
	l.queue = nil
	return nil
}
