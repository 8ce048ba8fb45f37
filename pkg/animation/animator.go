package animation

import (
	"errors"
	"time"
)

var (
	// ErrRunning is returned by Animator.Start while a run is in progress.
	ErrRunning = errors.New("animation: animator already running")
	// ErrInvalidEasing is returned for acceleration/deceleration fractions
	// outside [0, 1] or summing to more than 1.
	ErrInvalidEasing = errors.New("animation: invalid acceleration or deceleration fraction")
)

// Animator drives a single bounded-duration run from 0.0 to 1.0.
//
// Each tick delivers an eased fraction to the onTick callback passed to
// Start. Fractions never decrease, and the last one is exactly 1.0,
// after which onStop is called exactly once. Stop cancels a run without
// calling onStop. An Animator can be restarted after it stops.
//
// Animator is not safe for concurrent use: Start, Stop and the scheduler's
// Step must all be called from the same thread.
type Animator struct {
	// Duration is the length of a run. Zero or negative completes on the first tick.
	Duration time.Duration

	// Resolution is the minimum interval between ticks.
	// Zero ticks on every scheduler step.
	Resolution time.Duration

	// Acceleration is the fraction of the run spent speeding up.
	Acceleration float64

	// Deceleration is the fraction of the run spent slowing down.
	Deceleration float64

	// Curve overrides the acceleration curve when set.
	Curve func(float64) float64

	// Scheduler delivers ticks. Nil uses DefaultScheduler.
	Scheduler *Scheduler

	ticker   *Ticker
	curve    func(float64) float64
	onTick   func(fraction float64)
	onStop   func()
	fraction float64
	lastTick time.Duration
	ticked   bool
}

// NewAnimator creates an animator with the given duration and no easing.
func NewAnimator(duration time.Duration) *Animator {
	return &Animator{Duration: duration}
}

// Start begins a run. It returns ErrRunning if a run is already active;
// callers are expected to check IsRunning first.
func (a *Animator) Start(onTick func(fraction float64), onStop func()) error {
	if a.IsRunning() {
		return ErrRunning
	}
	curve := a.Curve
	if curve == nil {
		if err := ValidateEasing(a.Acceleration, a.Deceleration); err != nil {
			return err
		}
		curve = AccelerationCurve(a.Acceleration, a.Deceleration)
	}

	scheduler := a.Scheduler
	if scheduler == nil {
		scheduler = DefaultScheduler
	}

	a.curve = curve
	a.onTick = onTick
	a.onStop = onStop
	a.fraction = 0
	a.lastTick = 0
	a.ticked = false
	a.ticker = scheduler.CreateTicker(a.tick)
	a.ticker.Start()
	return nil
}

// IsRunning reports whether a run is in progress.
func (a *Animator) IsRunning() bool {
	return a.ticker != nil && a.ticker.IsActive()
}

// Stop cancels the current run without calling onStop.
func (a *Animator) Stop() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
	a.onTick = nil
	a.onStop = nil
}

func (a *Animator) tick(elapsed time.Duration) {
	progress := 1.0
	if a.Duration > 0 {
		progress = float64(elapsed) / float64(a.Duration)
		if progress > 1 {
			progress = 1
		}
	}

	// The final tick is never throttled.
	if progress < 1 && a.Resolution > 0 && a.ticked && elapsed-a.lastTick < a.Resolution {
		return
	}
	a.lastTick = elapsed
	a.ticked = true

	fraction := clampUnit(a.curve(progress))
	if progress >= 1 {
		fraction = 1
	}
	if fraction < a.fraction {
		fraction = a.fraction
	}
	a.fraction = fraction

	ticker := a.ticker
	if a.onTick != nil {
		a.onTick(fraction)
	}
	// onTick may have stopped or restarted the run.
	if a.ticker != ticker || !a.IsRunning() {
		return
	}
	if progress >= 1 {
		a.finish()
	}
}

func (a *Animator) finish() {
	onStop := a.onStop
	a.Stop()
	if onStop != nil {
		onStop()
	}
}
