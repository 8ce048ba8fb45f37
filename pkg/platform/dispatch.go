package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func()) bool
)

// RegisterDispatch sets the dispatch function used to schedule callbacks on the UI thread.
// The function reports whether the callback was accepted. A nil fn unregisters.
func RegisterDispatch(fn func(callback func()) bool) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread.
// Returns true if the callback was successfully scheduled, false if no dispatch function
// is registered, the callback is nil, or the dispatcher refused it.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	return fn(callback)
}
