package task

import (
	"sync"
	"sync/atomic"
)

// Completion is the one-shot handle a background task uses to signal that
// it has finished. Only the first Done call has an effect; later calls are
// ignored. Done may be called from any goroutine.
type Completion struct {
	once   sync.Once
	done   atomic.Bool
	signal func()
}

// NewCompletion returns a Completion that calls signal on the first Done.
// signal runs on the goroutine that calls Done.
func NewCompletion(signal func()) *Completion {
	return &Completion{signal: signal}
}

// Done reports completion. Calls after the first are no-ops.
func (c *Completion) Done() {
	if c == nil {
		return
	}
	c.once.Do(func() {
		c.done.Store(true)
		if c.signal != nil {
			c.signal()
		}
	})
}

// IsDone reports whether Done has been called.
func (c *Completion) IsDone() bool {
	return c != nil && c.done.Load()
}
