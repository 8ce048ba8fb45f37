// Package animation provides the timing primitives behind the search field's
// reveal animation.
//
// # Core Components
//
//   - [Scheduler]: owns the active tickers and advances them once per frame.
//     The host calls [Scheduler.Step] (or [StepTickers] for the default
//     scheduler) from its UI thread, so tick callbacks never race with input
//     handling or painting.
//
//   - [Ticker]: low-level per-frame callback receiving the elapsed time.
//
//   - [Animator]: a bounded-duration run producing eased fractions from 0.0
//     to 1.0, with exactly one completion callback.
//
//   - Curves: easing functions such as [AccelerationCurve] and [CubicBezier].
//
// # Basic Usage
//
//	a := animation.NewAnimator(300 * time.Millisecond)
//	a.Acceleration, a.Deceleration = 0.5, 0.5
//	if err := a.Start(func(f float64) { pos = width * f }, func() { done = true }); err != nil {
//	    // already running
//	}
//
//	// In the host frame loop:
//	animation.StepTickers()
package animation

import (
	"slices"
	"sync"
	"time"
)

// Scheduler advances the tickers registered with it.
//
// A Scheduler is safe for concurrent registration, but Step must be called
// from a single thread (the host UI thread); callbacks run on the caller.
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	active []*Ticker
}

// NewScheduler creates a scheduler reading time from c.
// A nil clock uses the package clock (see SetClock).
func NewScheduler(c Clock) *Scheduler {
	return &Scheduler{clock: c}
}

// DefaultScheduler is used by tickers and animators that do not name one.
var DefaultScheduler = NewScheduler(nil)

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return Now()
}

// CreateTicker returns an inactive ticker bound to this scheduler.
func (s *Scheduler) CreateTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Step advances all active tickers.
// This should be called once per frame from the host.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := slices.Clone(s.active)
	s.mu.Unlock()

	now := s.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.active = append(s.active, t)
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	s.active = slices.DeleteFunc(s.active, func(other *Ticker) bool { return other == t })
	s.mu.Unlock()
}

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [Animator].
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}

// StepTickers advances all tickers on the default scheduler.
func StepTickers() {
	DefaultScheduler.Step()
}

// HasActiveTickers reports whether the default scheduler has active tickers.
func HasActiveTickers() bool {
	return DefaultScheduler.HasActiveTickers()
}
